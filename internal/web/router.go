package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/go-kit/must"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func parseTemplates() *template.Template {
	return must.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// NewRouter builds the server-rendered frontend.
func NewRouter(api CatalogAPI, categories *CategoryCache) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.SetHTMLTemplate(parseTemplates())

	h := NewWebHandler(api, categories)
	h.RegisterRoutes(router)
	router.NoRoute(h.NotFound)
	return router
}
