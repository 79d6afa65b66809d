package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/seriesdb/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/tvshows")
	})

	// ==================== 剧集页面 ====================
	shows := r.Group("/tvshows")
	{
		shows.GET("", h.TVShowList)
		shows.GET("/new", h.TVShowNew)
		shows.GET("/:id/edit", h.TVShowEdit)
		shows.POST("/save", h.TVShowSave)
		shows.POST("/:id/delete", h.TVShowDelete)
	}

	// ==================== JSON API ====================
	api := r.Group("/api")
	{
		api.GET("/tvshows", h.APITVShowList)
		api.GET("/tvshows/:id", h.APITVShowGet)
	}
}
