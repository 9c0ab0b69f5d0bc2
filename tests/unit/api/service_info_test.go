package api

import (
	"net/http"
	"testing"

	serviceInfo "igv/api/models/constants/service-info"
	serviceInfoMvc "igv/api/mvc/service-info"
	"igv/api/tests/common"

	"github.com/stretchr/testify/assert"
)

func TestGetServiceInfo(t *testing.T) {
	cfg := common.InitConfig()

	t.Run("should return 200 status ok and the service description", func(t *testing.T) {
		//set up
		gc, rec := setUpEcho(cfg, nil, http.MethodGet, "/service-info", "")

		// perform
		serviceInfoMvc.GetServiceInfo(gc)

		// verify response status
		assert.Equal(t, http.StatusOK, rec.Code)

		// verify body
		json := getJsonBody(rec)

		assert.Equal(t, string(serviceInfo.SERVICE_ID), json["id"].(string))
		assert.Equal(t, string(serviceInfo.SERVICE_NAME), json["name"].(string))
		assert.Equal(t, string(serviceInfo.SERVICE_DESCRIPTION), json["description"].(string))
		assert.Equal(t, cfg.SemVer, json["version"].(string))
		assert.Equal(t, cfg.SemVer, json["type"].(map[string]interface{})["version"].(string))
	})
}
