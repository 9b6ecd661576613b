package api

import (
	"github.com/gin-gonic/gin"

	"cloudreel-server/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates the authenticated API route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all routes under the /api prefix. The group is expected
// to run behind the auth middleware; handlers still re-check the subject so
// they fail closed if the middleware is misconfigured.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api")
	group.POST("/videos", r.handlers.Video.Create)
	group.GET("/videos", r.handlers.Video.List)
	group.GET("/videos/cards", r.handlers.Video.Cards)
	group.POST("/uploads/sign", r.handlers.Upload.Sign)
	group.POST("/images", r.handlers.Upload.UploadImage)
	group.GET("/social/formats", r.handlers.Social.Formats)
	group.POST("/social/renditions", r.handlers.Social.Rendition)
}
