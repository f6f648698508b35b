package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

type destroyRequest struct {
	IDs []int `query:"id"`
}

func idParam(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		return 0, errHttpNotFound
	}
	return id, nil
}
