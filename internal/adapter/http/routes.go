package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoplist/internal/adapter/http/handlers"
	"shoplist/internal/adapter/http/middleware"
	"shoplist/pkg/apierrors"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Items      *handlers.ItemHandler
	Categories *handlers.CategoryHandler
}

// RegisterRoutes mounts the API at the root. Extra middleware runs after
// language negotiation, so it can answer in the client's language.
func RegisterRoutes(r *gin.Engine, h Handlers, extra ...gin.HandlerFunc) {
	r.NoRoute(middleware.LanguageMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgRouteNotFound, middleware.GetLang(c)))
	})

	api := r.Group("/")
	api.Use(middleware.LanguageMiddleware())
	api.Use(extra...)
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/items", h.Items.ListItems)
		api.GET("/items/:id", h.Items.GetItem)
		api.POST("/items", h.Items.CreateItem)
		api.PATCH("/items/:id", h.Items.UpdateItem)
		api.DELETE("/items/:id", h.Items.DeleteItem)

		api.GET("/categories", h.Categories.ListCategories)
		api.GET("/categories/:id", h.Categories.GetCategory)
		api.POST("/categories", h.Categories.CreateCategory)
		api.PATCH("/categories/:id", h.Categories.RenameCategory)
		api.DELETE("/categories/:id", h.Categories.DeleteCategory)
	}
}
