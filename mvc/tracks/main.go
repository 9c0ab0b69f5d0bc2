package tracks

import (
	"fmt"
	"net/http"
	"time"

	"igv/api/contexts"
	e "igv/api/models/dtos/errors"
	"igv/api/mvc"
	"igv/api/services/resolver"

	"github.com/labstack/echo"
)

// ResolveTrack resolves a parameter bag without attaching the track to
// any browser.
func ResolveTrack(c echo.Context) error {
	fmt.Printf("[%s] - ResolveTrack hit!\n", time.Now())
	gc := c.(*contexts.IgvContext)

	params, err := mvc.BindParameterBag(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}

	track, warnings := resolver.Resolve(params)
	return c.JSON(http.StatusOK, mvc.NewTrackResponse(gc.SessionService.Serializer, track, warnings))
}

func AddTrack(c echo.Context) error {
	fmt.Printf("[%s] - AddTrack hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	params, err := mvc.BindParameterBag(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}

	track, warnings, err := ss.AddTrack(c.Request().Context(), browserId, params)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.JSON(http.StatusCreated, mvc.NewTrackResponse(ss.Serializer, track, warnings))
}

func RemoveTrack(c echo.Context) error {
	fmt.Printf("[%s] - RemoveTrack hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)
	modelId := c.(*contexts.IgvContext).ModelId

	if err := ss.RemoveTrack(c.Request().Context(), browserId, modelId); err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func AddRoi(c echo.Context) error {
	fmt.Printf("[%s] - AddRoi hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	params, err := mvc.BindParameterBag(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}

	roi, warnings, err := ss.AddRoi(c.Request().Context(), browserId, params)
	if err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.JSON(http.StatusCreated, mvc.NewTrackResponse(ss.Serializer, roi, warnings))
}

func RemoveAllRoi(c echo.Context) error {
	fmt.Printf("[%s] - RemoveAllRoi hit!\n", time.Now())
	ss, browserId := mvc.RetrieveSessionElements(c)

	if err := ss.RemoveAllRoi(c.Request().Context(), browserId); err != nil {
		return mvc.RespondWithError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
