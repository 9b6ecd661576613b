package mediastore

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"cloudreel-server/internal/config"
	"cloudreel-server/internal/infrastructure/metrics"
	"cloudreel-server/internal/infrastructure/observability"
	"cloudreel-server/utils/platformerrors"
)

var errStoreDisabled = errors.New("media store is not configured; set MEDIASTORE_* to enable uploads")

// Client talks to the external media store. It signs direct browser uploads,
// performs server-side image uploads, and formats delivery URLs. Raw asset
// bytes never flow through this server for display; only identifiers and
// transformation parameters do.
type Client struct {
	cloudName     string
	apiKey        string
	apiSecret     string
	uploadPreset  string
	uploadBase    string
	deliveryBase  string
	maxImageBytes int64
	httpClient    *http.Client
	log           zerolog.Logger
	disabled      bool
}

// UploadSignature is the parameter set a browser needs for a direct upload.
type UploadSignature struct {
	UploadURL    string `json:"uploadUrl"`
	APIKey       string `json:"apiKey"`
	UploadPreset string `json:"uploadPreset"`
	Timestamp    int64  `json:"timestamp"`
	Signature    string `json:"signature"`
}

// UploadResult is the media store's answer to a successful upload.
type UploadResult struct {
	PublicID string  `json:"public_id"`
	Bytes    int64   `json:"bytes"`
	Duration float64 `json:"duration"`
	Format   string  `json:"format"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
}

// NewClient constructs a media store client from configuration. A client
// without credentials stays usable for URL formatting but rejects uploads.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	logger := log.With().Str("component", "mediastore").Logger()
	client := &Client{
		cloudName:     cfg.MediaCloudName,
		apiKey:        cfg.MediaAPIKey,
		apiSecret:     cfg.MediaAPISecret,
		uploadPreset:  cfg.MediaUploadPreset,
		uploadBase:    cfg.MediaUploadURL,
		deliveryBase:  cfg.MediaDeliveryURL,
		maxImageBytes: cfg.MaxImageBytes,
		httpClient: &http.Client{
			Timeout: cfg.MediaUploadTimeout,
		},
		log: logger,
	}
	if !cfg.MediaStoreConfigured() {
		logger.Warn().Msg("MEDIASTORE credentials are not set; uploads will be disabled until configured")
		client.disabled = true
	}
	return client
}

// URL formats a delivery URL for the given media identifier and transform.
func (c *Client) URL(asset AssetType, publicID string, t Transform) string {
	parts := []string{c.deliveryBase, c.cloudName, string(asset), "upload"}
	parts = append(parts, t.segments()...)
	parts = append(parts, publicID)
	return strings.Join(parts, "/")
}

// SignUpload produces the signed parameter set for a direct browser upload
// of the given asset type.
func (c *Client) SignUpload(asset AssetType, now time.Time) (*UploadSignature, error) {
	if c.disabled {
		return nil, errStoreDisabled
	}
	if asset != AssetImage && asset != AssetVideo {
		return nil, fmt.Errorf("unsupported asset type %q", asset)
	}

	timestamp := now.Unix()
	params := map[string]string{
		"timestamp":     fmt.Sprintf("%d", timestamp),
		"upload_preset": c.uploadPreset,
	}

	return &UploadSignature{
		UploadURL:    fmt.Sprintf("%s/%s/%s/upload", c.uploadBase, c.cloudName, asset),
		APIKey:       c.apiKey,
		UploadPreset: c.uploadPreset,
		Timestamp:    timestamp,
		Signature:    c.sign(params),
	}, nil
}

// UploadImage stores an image server-side and returns the media identifier.
// Caller-input problems (empty, oversize, non-image payloads) come back as
// validation errors; failures of the media store itself as external errors.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	if c.disabled {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeInternal,
			"media store is not configured",
			errStoreDisabled,
			"7a4e2c9b-3f6d-4e1a-8b5c-2d9f7e4a6c31",
		)
	}
	if len(data) == 0 {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeValidation,
			"file is empty",
			nil,
			"1c6f9b3e-8a2d-4f7c-b0e5-4a8d2c6f9e13",
		)
	}
	if int64(len(data)) > c.maxImageBytes {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("file exceeds max size of %d bytes", c.maxImageBytes),
			nil,
			"9e3b7d1f-5c8a-4b2e-a7d4-6f0c3e8b5a92",
		)
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("unsupported file type %s", detected.String()),
			nil,
			"4b8e2f6c-9d1a-4c7e-b3f8-0a5d9c2e7b46",
		)
	}

	ctx, span := observability.StartMediaStoreSpan(ctx, "upload")
	defer span.End()

	timestamp := time.Now().Unix()
	fields := map[string]string{
		"api_key":       c.apiKey,
		"timestamp":     fmt.Sprintf("%d", timestamp),
		"upload_preset": c.uploadPreset,
	}
	fields["signature"] = c.sign(map[string]string{
		"timestamp":     fields["timestamp"],
		"upload_preset": c.uploadPreset,
	})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("build upload form: %w", err)
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", c.uploadBase, c.cloudName, AssetImage)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordMediaStoreOperation("upload", "error", time.Since(start).Seconds())
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"media store upload failed",
			err,
			"6d2a8f4b-1e7c-4a9d-8c3b-5f9e0a7d4b28",
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		metrics.RecordMediaStoreOperation("upload", "error", time.Since(start).Seconds())
		io.Copy(io.Discard, resp.Body)
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"media store upload failed",
			fmt.Errorf("media store upload: %s", resp.Status),
			"0f7c4a9e-6b3d-4e8a-9d2c-7a5f1e8c3b64",
		)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.RecordMediaStoreOperation("upload", "error", time.Since(start).Seconds())
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"media store upload failed",
			fmt.Errorf("decode upload response: %w", err),
			"8c5b1e9d-4a7f-4d2b-a6e9-3c0f8b5d7a19",
		)
	}
	metrics.RecordMediaStoreOperation("upload", "success", time.Since(start).Seconds())

	c.log.Debug().
		Str("public_id", result.PublicID).
		Int64("bytes", result.Bytes).
		Msg("image uploaded to media store")

	return &result, nil
}

// sign computes the upload signature: the sorted query-form parameters with
// the API secret appended, hashed with SHA-1, as the media store's API
// defines.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return fmt.Sprintf("%x", sum)
}
