package mvc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"igv/api/contexts"
	"igv/api/models/dtos"
	e "igv/api/models/dtos/errors"
	"igv/api/models/igv"
	"igv/api/services"
	"igv/api/services/genomes"
	"igv/api/services/serialization"
	"igv/api/services/widgets"

	"github.com/labstack/echo"
)

func RetrieveSessionElements(c echo.Context) (*services.SessionService, string) {
	gc := c.(*contexts.IgvContext)
	return gc.SessionService, gc.BrowserId
}

// BindParameterBag decodes the request body as a json object. An empty
// body is an empty bag.
func BindParameterBag(c echo.Context) (map[string]interface{}, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return map[string]interface{}{}, nil
	}

	var params map[string]interface{}
	if err := json.Unmarshal(body, &params); err != nil {
		return nil, fmt.Errorf("request body must be a json object : %w", err)
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	return params, nil
}

// RespondWithError maps service errors onto http responses.
func RespondWithError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrBrowserNotFound),
		errors.Is(err, widgets.ErrModelNotFound),
		errors.Is(err, genomes.ErrUnknownGenome):
		return c.JSON(http.StatusNotFound, e.CreateSimpleNotFound(err.Error()))
	case errors.Is(err, services.ErrMissingGenome),
		errors.Is(err, services.ErrInvalidParameters),
		errors.Is(err, genomes.ErrInvalidGenome),
		errors.Is(err, services.ErrInvalidEvent),
		errors.Is(err, services.ErrUnknownEvent):
		return c.JSON(http.StatusBadRequest, e.CreateSimpleBadRequest(err.Error()))
	}

	fmt.Printf("Unexpected error : %v\n", err)
	return c.JSON(http.StatusInternalServerError, e.CreateSimpleInternalServerError(err.Error()))
}

func NewTrackResponse(serializer *serialization.Serializer, track igv.Track, warnings []string) dtos.TrackResponseDto {
	if warnings == nil {
		warnings = []string{}
	}
	kind := string(track.Kind())
	if kind == "" {
		kind = "generic"
	}
	return dtos.TrackResponseDto{
		ModelId:  track.GetModelId(),
		Token:    serialization.Token(track),
		Kind:     kind,
		State:    serializer.State(track),
		Warnings: warnings,
	}
}
