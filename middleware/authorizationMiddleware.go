package middleware

import (
	"net/http"

	"igv/api/contexts"
	authzModels "igv/api/models/authorization"
	authzConstants "igv/api/models/constants/authorization"
	e "igv/api/models/dtos/errors"
	"igv/api/services"

	"github.com/labstack/echo"
)

func ViewBrowserPermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.IgvContext)
		addBrowserResource(gc)
		addPermissions(gc, authzConstants.VIEW, authzConstants.BROWSER)
		return next(gc)
	}
}
func CreateBrowserPermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.IgvContext)
		addBrowserResource(gc)
		addPermissions(gc, authzConstants.CREATE, authzConstants.BROWSER)
		return next(gc)
	}
}
func EditBrowserPermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.IgvContext)
		addBrowserResource(gc)
		addPermissions(gc, authzConstants.EDIT, authzConstants.BROWSER)
		return next(gc)
	}
}
func DeleteBrowserPermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.IgvContext)
		addBrowserResource(gc)
		addPermissions(gc, authzConstants.DELETE, authzConstants.BROWSER)
		return next(gc)
	}
}
func ViewGenomePermissionAttribute(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gc := c.(*contexts.IgvContext)
		gc.RequestedResource = authzModels.ResourceEverything{Everything: true}
		addPermissions(gc, authzConstants.VIEW, authzConstants.GENOME)
		return next(gc)
	}
}

// MandateAuthorization checks the permissions gathered by the attribute
// middlewares above against the authorization service. Routes without
// any required permission pass through.
func MandateAuthorization(az *services.AuthzService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			gc := c.(*contexts.IgvContext)

			if az.IsEnabled() && len(gc.RequiredPermissions) > 0 {
				authnToken, missingHeaderErr := az.FetchAuthorizationHeader(c.Request().Header)
				if missingHeaderErr != nil {
					return echo.NewHTTPError(http.StatusForbidden, e.CreateSimpleForbidden(missingHeaderErr.Error()))
				}

				accessError := az.EnsureAccessPermitted(authnToken, gc.RequestedResource, gc.RequiredPermissions)
				if accessError != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, e.CreateSimpleUnauthorized(accessError.Error()))
				}
			}

			// access granted!
			return next(gc)
		}
	}
}

// -- helper functions
func addBrowserResource(gc *contexts.IgvContext) {
	if gc.BrowserId == "" {
		gc.RequestedResource = authzModels.ResourceEverything{Everything: true}
		return
	}
	gc.RequestedResource = authzModels.ResourceBrowser{BrowserId: gc.BrowserId}
}
func addPermissions(gc *contexts.IgvContext, verb authzConstants.PermissionVerb, noun authzConstants.PermissionNoun) {
	gc.RequiredPermissions = []authzModels.Permission{{
		Verb: verb,
		Noun: noun,
	}}
}
