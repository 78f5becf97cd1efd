package controllers

import (
	"net/http"

	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
)

// GetNotifications runs the overdue sweep and returns the combined
// alert list: low stock first, then overdue sales credits, then overdue
// buy credits.
func GetNotifications(c *gin.Context) {
	msgs, err := engine.Notifications(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load notifications", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": msgs})
}
