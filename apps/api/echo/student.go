package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edurecords/portal/core/auth"
	"github.com/edurecords/portal/core/student"
)

type studentApi struct {
	svc *student.Service
}

func registerStudentAPI(e *echo.Echo, jwt echo.MiddlewareFunc, svc *student.Service) {
	api := studentApi{svc: svc}

	sg := e.Group("/student", jwt, roleMiddleware(auth.RoleStudent))
	sg.GET("/data", api.data)
	sg.GET("/predict", api.predict)
}

// Handlers

// data returns the session-bound student's profile plus the three exam slots.
func (api *studentApi) data(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	dash, err := api.svc.Dashboard(claims.Roll)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "building dashboard")
	}
	return ctx.JSON(http.StatusOK, DataResponse{Data: dash})
}

// predict returns the rule-based performance label. Missing profile or marks
// degrade to a "No Data" prediction, never an error.
func (api *studentApi) predict(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	pred, err := api.svc.Predict(claims.Roll)
	if err != nil {
		return errors.Wrap(err, "predicting performance")
	}
	return ctx.JSON(http.StatusOK, pred)
}

type DataResponse struct {
	Data student.Dashboard `json:"data"`
}
