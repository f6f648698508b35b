package echoapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/reporting"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportsApi struct {
	svc *reporting.Service
}

func registerReportsAPI(g *echo.Group, svc *reporting.Service) {
	api := reportsApi{svc: svc}

	rg := g.Group("/reports")
	rg.GET("/dashboard", api.dashboard)
	rg.GET("/summary", api.summary)
	rg.GET("/trends", api.trends)
	rg.GET("/export", api.export)
}

func (api *reportsApi) dashboard(ctx echo.Context) error {
	stats, err := api.svc.Dashboard(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "building dashboard stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

func (api *reportsApi) summary(ctx echo.Context) error {
	period, err := reporting.ParsePeriod(ctx.QueryParam("period"))
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "period", Error: err.Error()})
	}
	summary, err := api.svc.Summarize(ctx.Request().Context(), period)
	if err != nil {
		return errors.Wrap(err, "building summary report")
	}
	return ctx.JSON(http.StatusOK, summary)
}

func (api *reportsApi) trends(ctx echo.Context) error {
	period, err := reporting.ParsePeriod(ctx.QueryParam("period"))
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "period", Error: err.Error()})
	}
	points, err := api.svc.TrendSeries(ctx.Request().Context(), period)
	if err != nil {
		return errors.Wrap(err, "building attendance trends")
	}
	return ctx.JSON(http.StatusOK, points)
}

func (api *reportsApi) export(ctx echo.Context) error {
	period, err := reporting.ParsePeriod(ctx.QueryParam("period"))
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "period", Error: err.Error()})
	}

	var buf bytes.Buffer
	if err = api.svc.WriteXLSX(ctx.Request().Context(), period, &buf); err != nil {
		return errors.Wrap(err, "exporting report")
	}

	filename := fmt.Sprintf("school-report-%s-%s.xlsx", period, core.Today())
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
