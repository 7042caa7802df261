package utils

import (
	"github.com/gin-gonic/gin"
)

// QueryOrForm returns the named request parameter, preferring the query
// string over the posted form. Mirrors how the mobile client sends the
// action selector on both GET and POST calls.
func QueryOrForm(c *gin.Context, key string) string {
	if value, ok := c.GetQuery(key); ok {
		return value
	}
	return c.PostForm(key)
}
