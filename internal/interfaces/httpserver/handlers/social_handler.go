package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cloudreel-server/internal/domain/social"
	"cloudreel-server/internal/infrastructure/auth"
	"cloudreel-server/internal/interfaces/httpserver/requests"
	"cloudreel-server/internal/interfaces/httpserver/responses"
)

// SocialHandler exposes the social-format endpoints. The feature is stateless
// server-side; a fresh view model is built per request.
type SocialHandler struct {
	urls social.URLFormatter
	log  zerolog.Logger
}

func NewSocialHandler(urls social.URLFormatter, log zerolog.Logger) *SocialHandler {
	return &SocialHandler{
		urls: urls,
		log:  log.With().Str("component", "social-handler").Logger(),
	}
}

// Formats godoc
// @Summary      List social formats
// @Description  Returns the preset aspect-ratio formats.
// @Tags         social
// @Produce      json
// @Success      200  {object}  responses.SocialFormatsResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/social/formats [get]
func (h *SocialHandler) Formats(c *gin.Context) {
	if _, ok := auth.Subject(c); !ok {
		responses.Unauthorized(c)
		return
	}

	c.JSON(http.StatusOK, responses.SocialFormatsResponse{Formats: social.Formats})
}

// Rendition godoc
// @Summary      Derive a social rendition
// @Description  Returns the rendition URL cropping an uploaded image to a preset format.
// @Tags         social
// @Accept       json
// @Produce      json
// @Param        request  body      requests.SocialRenditionRequest  true  "Rendition request"
// @Success      200      {object}  responses.RenditionResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      401      {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/social/renditions [post]
func (h *SocialHandler) Rendition(c *gin.Context) {
	if _, ok := auth.Subject(c); !ok {
		responses.Unauthorized(c)
		return
	}

	var req requests.SocialRenditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
		return
	}

	view := social.NewView()
	view.SetImage(req.PublicID)
	generation, err := view.SelectFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "unknown social format"})
		return
	}

	url, err := view.RenditionURL(h.urls)
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
		return
	}
	view.RenditionLoaded(generation)

	c.JSON(http.StatusOK, responses.BuildRenditionResponse(url, view.DownloadName(), view.Format()))
}
