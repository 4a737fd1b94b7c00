package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/plant-catalog/internal/plant/client"
	"github.com/ridloal/plant-catalog/internal/plant/domain"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

// AdminCookie holds the admin capability token for the browser session.
const AdminCookie = "catalog_admin_token"

const addPlantPath = "/admin/add-plant"

type basePage struct {
	Title      string
	IsAdmin    bool
	ActivePath string
}

type catalogPage struct {
	basePage
	SearchTerm       string
	SelectedCategory string
	Plants           []domain.Plant
	Categories       []string
	Error            string
	RetryURL         string
}

func (p catalogPage) HasActiveFilters() bool {
	return p.SearchTerm != "" || p.SelectedCategory != ""
}

func (p catalogPage) ResultsText() string {
	if len(p.Plants) == 1 {
		return "1 plant found"
	}
	return fmt.Sprintf("%d plants found", len(p.Plants))
}

type addPlantPage struct {
	basePage
	Form        PlantForm
	FieldErrors map[string]string
	Error       string
	Created     bool
	Suggested   []string
}

type WebHandler struct {
	api        CatalogAPI
	categories *CategoryCache
}

func NewWebHandler(api CatalogAPI, categories *CategoryCache) *WebHandler {
	return &WebHandler{api: api, categories: categories}
}

func (h *WebHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Catalog)
	adminRoutes := router.Group("/admin")
	{
		adminRoutes.GET("/add-plant", h.AddPlantForm)
		adminRoutes.POST("/add-plant", h.SubmitPlant)
		adminRoutes.POST("/logout", h.Logout)
	}
}

func (h *WebHandler) Catalog(c *gin.Context) {
	ctx := c.Request.Context()
	filter := domain.NewPlantFilter(c.Query("search"), c.Query("category"))

	page := catalogPage{
		basePage:         h.base(c, "Plant Catalog"),
		SearchTerm:       filter.Search,
		SelectedCategory: filter.Category,
		RetryURL:         c.Request.URL.RequestURI(),
	}

	plants, err := h.api.ListPlants(ctx, filter.Search, filter.Category)
	if err != nil {
		page.Error = client.AsAPIError(err).Message
	} else {
		page.Plants = plants
	}
	page.Categories = h.categories.Categories(ctx)

	c.HTML(http.StatusOK, "catalog.tmpl", page)
}

func (h *WebHandler) AddPlantForm(c *gin.Context) {
	if key, ok := c.GetQuery("admin_key"); ok {
		h.openSession(c, key)
		return
	}
	if _, ok := h.sessionToken(c); !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	h.renderAddPlant(c, http.StatusOK, addPlantPage{
		Form:    newPlantForm(),
		Created: c.Query("created") == "1",
	})
}

// openSession trades the admin key for a token and drops the key from the URL.
func (h *WebHandler) openSession(c *gin.Context, key string) {
	session, err := h.api.OpenAdminSession(c.Request.Context(), key)
	if err != nil {
		logger.Warn("Admin session refused: %s", client.AsAPIError(err).Message)
		h.clearSession(c)
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminCookie, session.Token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, addPlantPath)
}

func (h *WebHandler) SubmitPlant(c *gin.Context) {
	token, ok := h.sessionToken(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	form := PlantForm{
		Name:       c.PostForm("name"),
		Price:      c.PostForm("price"),
		Categories: c.PostForm("categories"),
		InStock:    checkboxValue(c.PostForm("inStock")),
	}
	draft, fieldErrors := form.Draft()
	if len(fieldErrors) > 0 {
		h.renderAddPlant(c, http.StatusBadRequest, addPlantPage{Form: form, FieldErrors: fieldErrors})
		return
	}

	if _, err := h.api.CreatePlant(c.Request.Context(), token, draft); err != nil {
		apiErr := client.AsAPIError(err)
		if apiErr.Status == http.StatusUnauthorized {
			h.clearSession(c)
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		status := apiErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		h.renderAddPlant(c, status, addPlantPage{
			Form:        form,
			FieldErrors: apiErr.FieldErrors(),
			Error:       apiErr.Message,
		})
		return
	}

	h.categories.Invalidate()
	c.Redirect(http.StatusSeeOther, addPlantPath+"?created=1")
}

func (h *WebHandler) Logout(c *gin.Context) {
	h.clearSession(c)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *WebHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", h.base(c, "Page Not Found"))
}

func (h *WebHandler) renderAddPlant(c *gin.Context, status int, page addPlantPage) {
	page.basePage = h.base(c, "Add New Plant")
	page.IsAdmin = true
	page.Suggested = suggestedCategories
	if page.FieldErrors == nil {
		page.FieldErrors = map[string]string{}
	}
	c.HTML(status, "add_plant.tmpl", page)
}

func (h *WebHandler) base(c *gin.Context, title string) basePage {
	_, isAdmin := h.sessionToken(c)
	return basePage{Title: title, IsAdmin: isAdmin, ActivePath: c.Request.URL.Path}
}

func (h *WebHandler) sessionToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(AdminCookie)
	if err != nil {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func (h *WebHandler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminCookie, "", -1, "/", "", false, true)
}
