package widgetModels

import (
	"fmt"
	"net/http"
	"time"

	"igv/api/contexts"
	"igv/api/models/dtos"
	"igv/api/mvc"
	"igv/api/services/serialization"

	"github.com/labstack/echo"
)

// GetModel resolves a model id (or reference token) to the state of the
// model it was issued for.
func GetModel(c echo.Context) error {
	fmt.Printf("[%s] - GetModel hit!\n", time.Now())
	gc := c.(*contexts.IgvContext)

	// serialized under the owning session's lock
	ms, err := gc.SessionService.ModelState(gc.ModelId)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}

	return c.JSON(http.StatusOK, dtos.ModelResponseDto{
		ModelId: gc.ModelId,
		Token:   serialization.REFERENCE_PREFIX + gc.ModelId,
		State:   ms.State,
	})
}
