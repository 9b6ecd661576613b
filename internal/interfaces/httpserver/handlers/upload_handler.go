package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cloudreel-server/internal/config"
	"cloudreel-server/internal/infrastructure/auth"
	"cloudreel-server/internal/infrastructure/mediastore"
	"cloudreel-server/internal/infrastructure/metrics"
	"cloudreel-server/internal/interfaces/httpserver/requests"
	"cloudreel-server/internal/interfaces/httpserver/responses"
)

// MediaStore defines the media store operations the upload endpoints need.
type MediaStore interface {
	SignUpload(asset mediastore.AssetType, now time.Time) (*mediastore.UploadSignature, error)
	UploadImage(ctx context.Context, filename string, data []byte) (*mediastore.UploadResult, error)
}

// UploadHandler exposes the upload signing and image upload endpoints.
type UploadHandler struct {
	cfg   *config.Config
	store MediaStore
	log   zerolog.Logger
}

func NewUploadHandler(cfg *config.Config, store MediaStore, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		cfg:   cfg,
		store: store,
		log:   log.With().Str("component", "upload-handler").Logger(),
	}
}

// Sign godoc
// @Summary      Sign a direct upload
// @Description  Returns the signed parameter set for a direct browser upload to the media store.
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Param        request  body      requests.SignUploadRequest  false  "Upload signing request"
// @Success      200      {object}  mediastore.UploadSignature
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      401      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/uploads/sign [post]
func (h *UploadHandler) Sign(c *gin.Context) {
	if _, ok := auth.Subject(c); !ok {
		responses.Unauthorized(c)
		return
	}

	req := requests.SignUploadRequest{ResourceType: string(mediastore.AssetVideo)}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: err.Error()})
			return
		}
	}

	asset := mediastore.AssetType(req.ResourceType)
	if asset != mediastore.AssetVideo && asset != mediastore.AssetImage {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "unsupported resource type"})
		return
	}

	signature, err := h.store.SignUpload(asset, time.Now())
	if err != nil {
		h.log.Error().Err(err).Msg("sign upload failed")
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{Error: "Error signing upload"})
		return
	}
	metrics.RecordUploadSignature(string(asset))

	c.JSON(http.StatusOK, signature)
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Uploads an image to the media store server-side. Nothing is persisted locally.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image to upload"
// @Success      200   {object}  responses.ImageUploadResponse
// @Failure      400   {object}  responses.ErrorResponse
// @Failure      401   {object}  responses.ErrorResponse
// @Failure      500   {object}  responses.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /api/images [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if _, ok := auth.Subject(c); !ok {
		responses.Unauthorized(c)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.cfg.MaxImageBytes+1))
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read file")
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "failed to read file"})
		return
	}

	result, err := h.store.UploadImage(c.Request.Context(), header.Filename, data)
	if err != nil {
		responses.HandleError(c, err, "Error uploading image", h.log)
		return
	}

	c.JSON(http.StatusOK, responses.BuildImageUploadResponse(result))
}
