package handlers

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"
)

func nullString(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
