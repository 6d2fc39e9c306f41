package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/edurecords/portal/core/auth"
	"github.com/edurecords/portal/core/student"
)

type adminApi struct {
	svc *student.Service
}

func registerAdminAPI(e *echo.Echo, jwt echo.MiddlewareFunc, svc *student.Service) {
	api := adminApi{svc: svc}

	e.POST("/admin/save", api.save, jwt, roleMiddleware(auth.RoleAdmin))
}

// Handlers

// save accepts a full student record plus one exam's marks and upserts both.
// Validation happens before any write; a non-admin session never touches data.
func (api *adminApi) save(ctx echo.Context) error {
	var data student.SaveRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SaveRecord")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.Save(data); err != nil {
		return errors.Wrap(err, "saving record")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Data saved successfully"})
}

type MessageResponse struct {
	Message string `json:"message"`
}
