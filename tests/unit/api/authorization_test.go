package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gam "igv/api/middleware"
	"igv/api/services"
	"igv/api/tests/common"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationMiddleware(t *testing.T) {
	var received map[string]interface{}
	permitted := true

	policy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]interface{}{"result": []interface{}{permitted}})
	}))
	defer policy.Close()

	cfg := common.InitConfig()
	cfg.AuthX.IsAuthorizationEnabled = true
	cfg.AuthX.AuthorizationUrl = policy.URL + "/"

	az := services.NewAuthzService(cfg)
	ss := services.NewSessionService(nil, cfg)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	id := "8f0c3b4e-4a4f-4a49-9d0a-4a0b7a3f2c11"

	chain := gam.MandateBrowserIdPathParam(gam.ViewBrowserPermissionAttribute(gam.MandateAuthorization(az)(ok)))

	t.Run("should forbid requests without an authorization header", func(t *testing.T) {
		gc, _ := setUpEcho(cfg, ss, http.MethodGet, "", "", "browserId", id)

		err := chain(gc)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	})

	t.Run("should ask the policy service about the browser", func(t *testing.T) {
		permitted = true
		gc, rec := setUpEcho(cfg, ss, http.MethodGet, "", "", "browserId", id)
		gc.Request().Header.Set("Authorization", "Bearer token")

		require.NoError(t, chain(gc))
		assert.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, map[string]interface{}{"browser_id": id}, received["requested_resource"])
		assert.Equal(t, []interface{}{"view:browser"}, received["required_permissions"])
	})

	t.Run("should deny when the policy service says no", func(t *testing.T) {
		permitted = false
		gc, _ := setUpEcho(cfg, ss, http.MethodGet, "", "", "browserId", id)
		gc.Request().Header.Set("Authorization", "Bearer token")

		err := chain(gc)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	})

	t.Run("should pass through when authorization is disabled", func(t *testing.T) {
		gc, rec := setUpEcho(common.InitConfig(), ss, http.MethodGet, "", "", "browserId", id)

		disabled := services.NewAuthzService(common.InitConfig())
		require.NoError(t, gam.ViewBrowserPermissionAttribute(gam.MandateAuthorization(disabled)(ok))(gc))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
