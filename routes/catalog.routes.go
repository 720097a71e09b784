package routes

import (
	"github.com/gin-gonic/gin"

	"stayease-backend/handlers"
)

type CatalogRouteHandler struct {
	catalogHandler handlers.CatalogHandler
}

func NewCatalogRouteHandler(catalogHandler handlers.CatalogHandler) CatalogRouteHandler {
	return CatalogRouteHandler{catalogHandler}
}

func (rc *CatalogRouteHandler) CatalogRoute(rg *gin.RouterGroup) {
	router := rg.Group("/catalog")

	router.GET("/entities/:kind", rc.catalogHandler.ListEntities)
	router.GET("/entities/:kind/:id", rc.catalogHandler.GetEntity)
	router.GET("/entities/:kind/:id/quote", rc.catalogHandler.Quote)
}
