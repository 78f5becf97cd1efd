package controllers

import (
	"errors"

	"github.com/FuadJemal86/aquaErp-sub001/service"

	"github.com/gin-gonic/gin"
)

// engine is the ledger/credit service, injected once at startup.
var engine *service.Service

func SetEngine(s *service.Service) { engine = s }

func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id missing from context")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("user_id invalid")
	}
	return id, nil
}
