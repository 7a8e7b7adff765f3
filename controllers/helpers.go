package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func getIntQ(c *gin.Context, key string, def int) int {
	v, _ := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if v <= 0 {
		return def
	}
	return v
}

func getUintQPtr(c *gin.Context, key string) *uint {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			u := uint(n)
			return &u
		}
	}
	return nil
}

func getBoolQPtr(c *gin.Context, key string) *bool {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}

func paramID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		return 0, false
	}
	return uint(id64), true
}

// parseDateOnly menerima "YYYY-MM-DD" di zona waktu kantor.
func parseDateOnly(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, utils.OrgLocation())
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// applySort membatasi kolom sort ke whitelist; default DESC by id.
func applySort(q *gorm.DB, sortBy, sortOrder string, allowed map[string]string) *gorm.DB {
	col, ok := allowed[sortBy]
	if !ok {
		col = allowed["default"]
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return q.Order(col + " " + dir)
}

func countThenPage(c *gin.Context, q *gorm.DB) (*gorm.DB, int, int, int64, error) {
	page := getIntQ(c, "page", 1)
	limit := getIntQ(c, "limit", 20)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, 0, 0, err
	}
	offset := (page - 1) * limit
	return q.Offset(offset).Limit(limit), page, limit, total, nil
}
