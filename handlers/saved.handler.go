package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayease-backend/domain"
	"stayease-backend/services"
)

type SavedItemHandler struct {
	savedService   services.SavedItemService
	catalogService services.CatalogService
}

func NewSavedItemHandler(savedService services.SavedItemService, catalogService services.CatalogService) SavedItemHandler {
	return SavedItemHandler{savedService, catalogService}
}

func (sh *SavedItemHandler) ToggleSave(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	var req struct {
		Kind     domain.EntityKind `json:"kind" binding:"required"`
		EntityID string            `json:"entityId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
		return
	}

	entity, err := sh.catalogService.GetEntity(req.Kind, req.EntityID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": "Entity with that id does not exist"})
		return
	}

	saved, err := sh.savedService.ToggleSave(user.ID, entity)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "saved": saved})
}

func (sh *SavedItemHandler) ListSaved(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	sort := domain.SavedSort(ctx.DefaultQuery("sort", "recent"))
	items, err := sh.savedService.List(user.ID, sort)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if items == nil {
		items = []*domain.SavedItem{}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "success", "savedItems": items})
}

func (sh *SavedItemHandler) RemoveSaved(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	if err := sh.savedService.Remove(user.ID, ctx.Params.ByName("entityId")); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success"})
}

// CountSaved reports the live collection size for the navigation badge.
func (sh *SavedItemHandler) CountSaved(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "You are not logged in"})
		return
	}

	count, err := sh.savedService.Count(user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "count": count})
}
