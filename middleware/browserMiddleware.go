package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"igv/api/contexts"
	"igv/api/models/dtos"
	"igv/api/services/serialization"
	"igv/api/utils"

	"github.com/labstack/echo"
)

/*
	Echo middleware to ensure a valid `browserId` HTTP path parameter was provided
*/
func MandateBrowserIdPathParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.IgvContext)

		browserId := c.Param("browserId")
		if len(browserId) == 0 {
			return c.JSON(http.StatusBadRequest, &dtos.GeneralErrorResponseDto{
				Code:      400,
				Message:   "Bad Request",
				Timestamp: time.Now(),
				Errors: []dtos.GeneralError{
					{
						Message: "Missing browser id",
					},
				},
			})
		}

		// browser ids are always uuids, existence is checked later
		if !utils.IsValidUUID(browserId) {
			fmt.Printf("Invalid browser id %s\n", browserId)

			return c.JSON(http.StatusBadRequest, &dtos.GeneralErrorResponseDto{
				Code:      400,
				Message:   "Bad Request",
				Timestamp: time.Now(),
				Errors: []dtos.GeneralError{
					{
						Message: fmt.Sprintf("Invalid browser id %s - please provide a valid UUID", browserId),
					},
				},
			})
		}

		gc.BrowserId = browserId
		return next(gc)
	}
}

/*
	Echo middleware to ensure a `modelId` HTTP path parameter was provided,
	either as a bare model id or as a reference token (IPY_MODEL_<id>)
*/
func MandateModelIdPathParam(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.IgvContext)

		modelId := strings.TrimSpace(c.Param("modelId"))
		if id, isToken := serialization.ParseToken(modelId); isToken {
			modelId = id
		}

		if !utils.IsValidUUID(modelId) {
			return c.JSON(http.StatusBadRequest, &dtos.GeneralErrorResponseDto{
				Code:      400,
				Message:   "Bad Request",
				Timestamp: time.Now(),
				Errors: []dtos.GeneralError{
					{
						Message: fmt.Sprintf("Invalid model id '%s'", c.Param("modelId")),
					},
				},
			})
		}

		gc.ModelId = modelId
		return next(gc)
	}
}
