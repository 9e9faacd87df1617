package controllers

import (
	"net/http"

	"bitbucket.org/mmdatafocus/profit_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// historyItem decorates a history entry with its rendered field diff,
// so the viewer does not re-implement snapshot comparison.
type historyItem struct {
	*models.ProductHistory
	Changes []models.FieldChange `json:"changes"`
}

// GetProductHistory returns a product's audit trail, newest first.
// It also answers for already-deleted products: history outlives them.
func GetProductHistory(c *gin.Context) {
	productId, ok := parseProductID(c)
	if !ok {
		return
	}

	entries, err := models.GetProductHistory(c.Request.Context(), productId)
	if err != nil {
		respondServerError(c, err)
		return
	}

	items := make([]historyItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, historyItem{
			ProductHistory: entry,
			Changes:        entry.ChangedFields(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

type updateNoteBody struct {
	Note string `json:"note"`
}

// UpdateHistoryNote replaces the free-text note of one history entry.
func UpdateHistoryNote(c *gin.Context) {
	historyId, err := uuid.Parse(c.Param("historyId"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, models.MsgHistoryNotFound)
		return
	}

	var body updateNoteBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondMessage(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	entry, err := models.UpdateHistoryNote(c.Request.Context(), historyId, body.Note)
	if err != nil {
		respondModelError(c, err, models.MsgHistoryNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entry,
	})
}
