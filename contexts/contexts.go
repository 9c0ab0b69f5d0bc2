package contexts

import (
	"igv/api/models"
	"igv/api/models/authorization"
	"igv/api/services"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/labstack/echo"
)

type (
	// "Helper" Context to pass into routes that need
	//  the session service and other variables
	IgvContext struct {
		echo.Context
		Es7Client      *es7.Client
		Config         *models.Config
		SessionService *services.SessionService

		// Validated path parameters
		BrowserId string
		ModelId   string

		// Authorization
		RequestedResource   authorization.Resource
		RequiredPermissions []authorization.Permission
	}
)
