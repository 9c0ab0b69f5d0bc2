package middleware

import (
	"net/http"
	"strings"

	e "igv/api/models/dtos/errors"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a non-blank `symbol` HTTP query parameter was provided
*/
func MandateSearchSymbolAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		symbol := strings.TrimSpace(c.QueryParam("symbol"))
		if len(symbol) == 0 {
			return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest("Missing search symbol (e.g. ?symbol=BRCA1 or ?symbol=chr1:100-200)"))
		}

		return next(c)
	}
}
