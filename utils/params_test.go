package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestQueryOrForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(req *http.Request) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = req
		return c
	}

	t.Run("query string wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/?action=get-comments", strings.NewReader("action=add-comment"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		assert.Equal(t, "get-comments", QueryOrForm(newContext(req), "action"))
	})

	t.Run("falls back to the posted form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("action=like-comment"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		assert.Equal(t, "like-comment", QueryOrForm(newContext(req), "action"))
	})

	t.Run("absent everywhere is empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Equal(t, "", QueryOrForm(newContext(req), "action"))
	})
}
