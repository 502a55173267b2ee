// Package view is the narrow surface through which the account flow talks to
// the template layer. Handlers build a ViewData and never touch templates
// directly, so tests can swap the renderer for a recorder.
package view

import (
	"github.com/gin-gonic/gin"
)

// View names rendered by the account flow.
const (
	Login         = "account/login"
	Register      = "account/register"
	Account       = "account/account"
	UpdateAccount = "account/update-account"
)

// ViewData is the data contract every rendered view receives.
type ViewData struct {
	Title  string
	Nav    Nav
	Errors map[string]string
	Notice string
	Data   map[string]any
}

// Renderer renders a named view with the given HTTP status.
type Renderer interface {
	Render(c *gin.Context, status int, name string, data ViewData)
}

// HTMLRenderer renders through gin's html/template engine. Templates are
// registered under their view name plus an ".html" suffix.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer { return &HTMLRenderer{} }

func (r *HTMLRenderer) Render(c *gin.Context, status int, name string, data ViewData) {
	c.HTML(status, name+".html", data)
}
