package controllers

import (
	"errors"
	"net/http"
	"os"

	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
)

// PublicDownload serves a stored attachment (receipt, ID card) by its
// relative path: GET /public-download?path=receipts/<uuid>.png
func PublicDownload(c *gin.Context) {
	rel := c.Query("path")
	abs, err := utils.ResolvePublicPath(rel)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid path", nil)
		return
	}

	if _, err := os.Stat(abs); errors.Is(err, os.ErrNotExist) {
		utils.Error(c, http.StatusNotFound, "File not found", nil)
		return
	}
	c.File(abs)
}
