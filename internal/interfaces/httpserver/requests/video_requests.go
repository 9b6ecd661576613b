package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"cloudreel-server/internal/domain/video"
)

// ByteSize accepts a byte count serialized as a JSON number or a numeric
// string; upload widgets report it either way.
type ByteSize float64

func (b *ByteSize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*b = 0
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*b = 0
			return nil
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid byte size %q", raw)
		}
		*b = ByteSize(value)
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*b = ByteSize(value)
	return nil
}

// CreateVideoRequest represents the create-video-record payload.
type CreateVideoRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	PublicID     string   `json:"publicId" binding:"required"`
	Duration     float64  `json:"duration"`
	OriginalSize ByteSize `json:"originalSize"`
}

// ToDomain converts the request to domain create parameters for the owner.
func (r *CreateVideoRequest) ToDomain(ownerID string) video.CreateParams {
	return video.CreateParams{
		OwnerID:      ownerID,
		Title:        r.Title,
		Description:  r.Description,
		PublicID:     r.PublicID,
		Duration:     r.Duration,
		OriginalSize: float64(r.OriginalSize),
	}
}
