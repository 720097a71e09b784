package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stayease-backend/domain"
	"stayease-backend/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
	pricingService services.PricingService
}

func NewCatalogHandler(catalogService services.CatalogService, pricingService services.PricingService) CatalogHandler {
	return CatalogHandler{catalogService, pricingService}
}

// ListEntities serves a kind with optional location/guests/price filtering,
// all applied in memory over the listed sequence.
func (ch *CatalogHandler) ListEntities(ctx *gin.Context) {
	kind := domain.EntityKind(ctx.Params.ByName("kind"))
	if !kind.Valid() {
		ctx.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": "Unknown entity kind"})
		return
	}

	entities, err := ch.catalogService.ListEntities(kind)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if location := ctx.Query("location"); location != "" {
		entities = services.FilterByLocation(entities, location)
	}
	if guests, err := strconv.Atoi(ctx.Query("guests")); err == nil {
		entities = services.FilterByCapacity(entities, guests)
	}
	minPrice, _ := strconv.Atoi(ctx.Query("minPrice"))
	maxPrice, _ := strconv.Atoi(ctx.Query("maxPrice"))
	if minPrice > 0 || maxPrice > 0 {
		entities = services.FilterByPrice(entities, minPrice, maxPrice)
	}

	if entities == nil {
		entities = []domain.BookableEntity{}
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "entities": entities})
}

func (ch *CatalogHandler) GetEntity(ctx *gin.Context) {
	kind := domain.EntityKind(ctx.Params.ByName("kind"))
	id := ctx.Params.ByName("id")

	entity, err := ch.catalogService.GetEntity(kind, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": "Entity with that id does not exist"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "entity": entity})
}

// Quote prices a stay for a property. Both total variants are returned, the
// widget one without taxes and the confirmation one with them.
func (ch *CatalogHandler) Quote(ctx *gin.Context) {
	entity, err := ch.catalogService.GetEntity(domain.KindProperty, ctx.Params.ByName("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"status": "fail", "message": "Entity with that id does not exist"})
		return
	}

	checkIn, err := time.Parse(dateLayout, ctx.Query("checkIn"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Invalid check-in date"})
		return
	}
	checkOut, err := time.Parse(dateLayout, ctx.Query("checkOut"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Invalid check-out date"})
		return
	}

	widget, err := ch.pricingService.ComputeWidgetTotal(entity.PricePerNight, checkIn, checkOut, entity.CleaningFee)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}
	confirmation, err := ch.pricingService.ComputeConfirmationTotal(entity.PricePerNight, checkIn, checkOut, entity.CleaningFee)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"widget":       widget,
		"confirmation": confirmation,
	})
}
