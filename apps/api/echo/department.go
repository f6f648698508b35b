package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mkaleko/shule/core/department"
)

type departmentApi struct {
	svc *department.Service
}

func registerDepartmentAPI(g *echo.Group, svc *department.Service) {
	api := departmentApi{svc: svc}

	dg := g.Group("/departments")
	dg.GET("", api.query)
	dg.POST("", api.create)
	dg.DELETE("", api.destroyMultiple)

	ig := dg.Group("/:id")
	ig.GET("", api.retrieve)
	ig.PUT("", api.update)
	ig.DELETE("", api.destroy)
}

func (api *departmentApi) query(ctx echo.Context) error {
	var qf department.QueryFilter
	if err := ctx.Bind(&qf); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	departments, err := api.svc.Query(ctx.Request().Context(), qf)
	if err != nil {
		return errors.Wrap(err, "querying departments")
	}
	return ctx.JSON(http.StatusOK, departments)
}

func (api *departmentApi) create(ctx echo.Context) error {
	var data department.NewDepartment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDepartment")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	d, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating department")
	}
	return ctx.JSON(http.StatusCreated, d)
}

func (api *departmentApi) retrieve(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	d, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *departmentApi) update(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	var data department.UpdateDepartment
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateDepartment")
	}
	orig, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	if err = data.Validate(orig); err != nil {
		return err
	}
	d, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, d)
}

func (api *departmentApi) destroy(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting department")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *departmentApi) destroyMultiple(ctx echo.Context) error {
	var data destroyRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to destroyRequest")
	}
	if len(data.IDs) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.Delete(ctx.Request().Context(), data.IDs...); err != nil {
		return errors.Wrap(err, "deleting departments")
	}
	return ctx.NoContent(http.StatusNoContent)
}
