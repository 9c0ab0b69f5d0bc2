package serviceInfo

import (
	"net/http"

	"igv/api/contexts"
	serviceInfo "igv/api/models/constants/service-info"

	"github.com/labstack/echo"
)

// Spec: https://github.com/ga4gh-discovery/ga4gh-service-info
func GetServiceInfo(c echo.Context) error {
	cfg := c.(*contexts.IgvContext).Config

	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":          serviceInfo.SERVICE_ID,
		"name":        serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"type": map[string]interface{}{
			"artifact": serviceInfo.SERVICE_ARTIFACT,
			"group":    serviceInfo.SERVICE_TYPE_NO_VER,
			"version":  cfg.SemVer,
		},
		"organization": map[string]string{
			"name": "igv-api",
			"url":  "https://igv.org",
		},
		"contactUrl": cfg.ServiceContact,
		"version":    cfg.SemVer,
	})
}
