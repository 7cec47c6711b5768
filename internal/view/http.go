package view

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workspace-admin/pkg/backend"
	"workspace-admin/pkg/response"
)

// PageTemplate is the template every authenticated page renders with.
const PageTemplate = "page.html"

// Render writes page.
func Render(c *gin.Context, page Page) {
	c.HTML(http.StatusOK, PageTemplate, page)
}

// RenderError shows page with the server message of err, or fallback, above
// an empty table. A rejected token sends the browser back to sign in.
func RenderError(c *gin.Context, page Page, err error, fallback string) {
	if errors.Is(err, backend.ErrUnauthorized) {
		c.Redirect(http.StatusFound, response.LoginPath)
		return
	}
	page.Error = backend.Message(err, fallback)
	c.HTML(http.StatusOK, PageTemplate, page)
}

// QueryInt reads a positive integer query parameter, or def.
func QueryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
