package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func clauseUpdateLock() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// ===== shared report/query helpers =====

// summaryCap bounds the unpaginated fetch that feeds summary rollups.
const summaryCap = 100000

func getIntQ(c *gin.Context, key string, def int) int {
	v, _ := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if v <= 0 {
		return def
	}
	return v
}

func getDateQ(c *gin.Context, key string) *time.Time {
	if s := strings.TrimSpace(c.Query(key)); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			return &t
		}
	}
	return nil
}

// applyDateRange filters col to [from, to] inclusive; to is extended to
// end of day.
func applyDateRange(q *gorm.DB, col string, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where(col+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(col+" < ?", to.AddDate(0, 0, 1))
	}
	return q
}

func paginate(q *gorm.DB, page, limit int) *gorm.DB {
	offset := (page - 1) * limit
	return q.Offset(offset).Limit(limit)
}
