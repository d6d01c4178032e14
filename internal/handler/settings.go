package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vi-fly/vendor-elite-backend/internal/application"
	"github.com/Vi-fly/vendor-elite-backend/internal/application/dto"
)

type SettingsHandler struct {
	settings *application.SettingsService
}

func NewSettingsHandler(settings *application.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.settings.List(c.Request.Context(), c.Query("scope"), c.Query("scope_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) Put(c *gin.Context) {
	var req dto.PutSettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setting, err := h.settings.Put(c.Request.Context(), req.Scope, req.ScopeID, req.Key, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
