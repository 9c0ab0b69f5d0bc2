package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"igv/api/contexts"
	gam "igv/api/middleware"
	"igv/api/models"
	serviceInfo "igv/api/models/constants/service-info"
	browsersMvc "igv/api/mvc/browsers"
	genomesMvc "igv/api/mvc/genomes"
	serviceInfoMvc "igv/api/mvc/service-info"
	tracksMvc "igv/api/mvc/tracks"
	widgetModelsMvc "igv/api/mvc/widget-models"
	esRepo "igv/api/repositories/elasticsearch"
	"igv/api/services"
	"igv/api/services/sanitation"
	"igv/api/utils"

	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	fmt.Printf("Using : \n"+

		"\tDebug : %t \n"+
		"\tSemantic Version : %s \n\n"+

		"\tSession TTL (hours) : %d \n"+
		"\tSanitation Time (UTC) : %s \n"+
		"\tSerialization Policy : %s \n\n"+

		"\tElasticsearch Enabled : %t \n"+
		"\tElasticsearch Url : %s \n"+
		"\tElasticsearch Username : %s\n\n"+

		"\tAuthorization Enabled : %t\n"+
		"\tAuthorization Url : %s\n\n"+

		"Running on Port : %s\n",

		cfg.Debug, cfg.SemVer,
		cfg.Api.SessionTtlHours,
		cfg.Api.SanitationTime,
		cfg.Api.SerializationPolicy,
		cfg.Elasticsearch.Enabled,
		cfg.Elasticsearch.Url, cfg.Elasticsearch.Username,
		cfg.AuthX.IsAuthorizationEnabled,
		cfg.AuthX.AuthorizationUrl,
		cfg.Api.Port)
	// --

	// Instantiate Server
	e := echo.New()
	if cfg.Debug {
		e.Logger.SetLevel(log.DEBUG)
		log.SetLevel(log.DEBUG)
	}

	// Service Connections:
	// -- Elasticsearch
	var es *es7.Client
	if cfg.Elasticsearch.Enabled {
		es, err = utils.CreateEsConnection(&cfg)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		if err := esRepo.EnsureIndices(&cfg, es); err != nil {
			// sessions still work in memory
			log.Errorf("failed to prepare elasticsearch indices : %v", err)
		}
	}

	// Service Singletons
	az := services.NewAuthzService(&cfg)
	ss := services.NewSessionService(es, &cfg)
	sanitation.NewSanitationService(es, &cfg, ss)

	// Configure Server
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
	}))

	// -- Override handlers with "custom IGV" context
	//		to be able to provide variables and global singletons
	e.Use(func(h echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &contexts.IgvContext{
				Context:        c,
				Es7Client:      es,
				Config:         &cfg,
				SessionService: ss,
			}
			return h(cc)
		}
	})

	authz := gam.MandateAuthorization(az)

	// Begin MVC Routes
	// -- Root
	e.GET("/", func(c echo.Context) error {
		fmt.Printf("[%s] - Root hit!\n", time.Now())
		return c.JSON(http.StatusOK, serviceInfo.SERVICE_WELCOME)
	})

	// -- Service Info
	e.GET("/service-info", serviceInfoMvc.GetServiceInfo)

	// -- Genomes
	e.GET("/genomes", genomesMvc.GetGenomes,
		gam.ViewGenomePermissionAttribute, authz)
	e.GET("/genomes/:genomeId", genomesMvc.GetGenome,
		gam.ViewGenomePermissionAttribute, authz)

	// -- Tracks
	e.POST("/tracks/resolve", tracksMvc.ResolveTrack,
		gam.ViewGenomePermissionAttribute, authz)

	// -- Browsers
	e.POST("/browsers", browsersMvc.CreateBrowser,
		gam.CreateBrowserPermissionAttribute, authz)
	e.GET("/browsers/:browserId", browsersMvc.GetBrowser,
		gam.MandateBrowserIdPathParam, gam.ViewBrowserPermissionAttribute, authz)
	e.DELETE("/browsers/:browserId", browsersMvc.DeleteBrowser,
		gam.MandateBrowserIdPathParam, gam.DeleteBrowserPermissionAttribute, authz)
	e.GET("/browsers/:browserId/state", browsersMvc.GetBrowserEmbedState,
		gam.MandateBrowserIdPathParam, gam.ViewBrowserPermissionAttribute, authz)

	e.POST("/browsers/:browserId/tracks", tracksMvc.AddTrack,
		gam.MandateBrowserIdPathParam, gam.EditBrowserPermissionAttribute, authz)
	e.DELETE("/browsers/:browserId/tracks/:modelId", tracksMvc.RemoveTrack,
		gam.MandateBrowserIdPathParam, gam.MandateModelIdPathParam, gam.EditBrowserPermissionAttribute, authz)
	e.POST("/browsers/:browserId/roi", tracksMvc.AddRoi,
		gam.MandateBrowserIdPathParam, gam.EditBrowserPermissionAttribute, authz)
	e.DELETE("/browsers/:browserId/roi", tracksMvc.RemoveAllRoi,
		gam.MandateBrowserIdPathParam, gam.EditBrowserPermissionAttribute, authz)

	e.POST("/browsers/:browserId/search", browsersMvc.Search,
		gam.MandateBrowserIdPathParam, gam.MandateSearchSymbolAttribute, gam.ViewBrowserPermissionAttribute, authz)
	e.POST("/browsers/:browserId/dump", browsersMvc.DumpJson,
		gam.MandateBrowserIdPathParam, gam.ViewBrowserPermissionAttribute, authz)
	e.GET("/browsers/:browserId/dump", browsersMvc.GetLastDump,
		gam.MandateBrowserIdPathParam, gam.ViewBrowserPermissionAttribute, authz)
	e.GET("/browsers/:browserId/messages", browsersMvc.GetMessages,
		gam.MandateBrowserIdPathParam, gam.ViewBrowserPermissionAttribute, authz)
	e.POST("/browsers/:browserId/events", browsersMvc.PostEvent,
		gam.MandateBrowserIdPathParam, gam.EditBrowserPermissionAttribute, authz)

	// -- Widget models
	e.GET("/models/:modelId", widgetModelsMvc.GetModel,
		gam.MandateModelIdPathParam, gam.ViewBrowserPermissionAttribute, authz)

	// Run
	e.Logger.Fatal(e.Start(":" + cfg.Api.Port))
}
