package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cloudreel-server/internal/config"
	"cloudreel-server/internal/domain/video"
	"cloudreel-server/internal/infrastructure/auth"
	"cloudreel-server/internal/interfaces/httpserver/requests"
	"cloudreel-server/internal/interfaces/httpserver/responses"
)

// VideoHandler exposes the video metadata endpoints.
type VideoHandler struct {
	cfg     *config.Config
	service video.Service
	log     zerolog.Logger
}

func NewVideoHandler(cfg *config.Config, service video.Service, log zerolog.Logger) *VideoHandler {
	return &VideoHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "video-handler").Logger(),
	}
}

// Create godoc
// @Summary      Save video metadata
// @Description  Persists the metadata of a video already uploaded to the media store.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request  body      requests.CreateVideoRequest  true  "Video metadata"
// @Success      200      {object}  video.Video
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      401      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	subject, ok := auth.Subject(c)
	if !ok {
		responses.Unauthorized(c)
		return
	}

	var req requests.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToDomain(subject))
	if err != nil {
		responses.HandleError(c, err, "Error saving video", h.log)
		return
	}

	c.JSON(http.StatusOK, created)
}

// List godoc
// @Summary      List my videos
// @Description  Returns the caller's video records, newest first.
// @Tags         videos
// @Produce      json
// @Success      200  {array}   video.Video
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	subject, ok := auth.Subject(c)
	if !ok {
		responses.Unauthorized(c)
		return
	}

	videos, err := h.service.ListByOwner(c.Request.Context(), subject)
	if err != nil {
		responses.HandleError(c, err, "Error fetching videos", h.log)
		return
	}
	if videos == nil {
		videos = []video.Video{}
	}

	c.JSON(http.StatusOK, videos)
}

// Cards godoc
// @Summary      List gallery cards
// @Description  Returns the caller's videos with derived rendition URLs and display fields.
// @Tags         videos
// @Produce      json
// @Success      200  {array}   video.Card
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/videos/cards [get]
func (h *VideoHandler) Cards(c *gin.Context) {
	subject, ok := auth.Subject(c)
	if !ok {
		responses.Unauthorized(c)
		return
	}

	videos, err := h.service.ListByOwner(c.Request.Context(), subject)
	if err != nil {
		responses.HandleError(c, err, "Error fetching videos", h.log)
		return
	}

	cards := make([]video.Card, 0, len(videos))
	for _, v := range videos {
		cards = append(cards, h.service.BuildCard(v))
	}

	c.JSON(http.StatusOK, cards)
}
