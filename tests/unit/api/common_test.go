package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"

	"igv/api/contexts"
	"igv/api/models"
	"igv/api/services"

	"github.com/labstack/echo"
)

// setUpEcho builds a context for a single handler call. Path parameters
// are given as name, value pairs.
func setUpEcho(cfg *models.Config, ss *services.SessionService, method string, path string, body string, params ...string) (*contexts.IgvContext, *httptest.ResponseRecorder) {
	e := echo.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	if path == "" {
		path = "/"
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	names, values := []string{}, []string{}
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	gc := &contexts.IgvContext{
		Context:        c,
		Es7Client:      nil, // sessions are kept in memory only
		Config:         cfg,
		SessionService: ss,
	}
	return gc, rec
}

func getJsonBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	// - extract body bytes from response
	body, _ := io.ReadAll(rec.Body)
	// - unmarshal or decode the JSON to a declared empty interface.
	var bodyJson map[string]interface{}
	json.Unmarshal(body, &bodyJson)

	return bodyJson
}
