package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edurecords/portal/core"
	"github.com/edurecords/portal/core/auth"
)

type sessionApi struct {
	auth auth.Authenticator
}

func registerSessionAPI(e *echo.Echo, authn auth.Authenticator) {
	api := sessionApi{auth: authn}

	e.POST("/login", api.login)
	e.GET("/logout", api.logout)
}

// Handlers

func (api *sessionApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	id, err := api.auth.Authenticate(data.Username, data.Password)
	if err != nil {
		if errors.Cause(err) == auth.ErrBadCredentials {
			// the original portal reports a failed login as a plain non-success
			return ctx.JSON(http.StatusOK, LoginResponse{Success: false})
		}
		return errors.Wrap(err, "authenticating")
	}

	token, err := GenerateToken(GetSessionClaims(id))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	ctx.SetCookie(newSessionCookie(token))

	return ctx.JSON(http.StatusOK, LoginResponse{Success: true, Role: id.Role})
}

func (api *sessionApi) logout(ctx echo.Context) error {
	ctx.SetCookie(clearedSessionCookie())
	return ctx.Redirect(http.StatusFound, "/")
}

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Success bool   `json:"success"`
		Role    string `json:"role,omitempty"`
	}
)

func (lr *LoginRequest) Validate() error {
	lr.Username = core.CleanString(lr.Username)
	return core.Validate.Struct(lr)
}
