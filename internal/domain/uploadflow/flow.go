// Package uploadflow models the upload screen's state machine: a video is
// first uploaded directly to the media store, then its metadata is saved
// through the video service. The flow object is constructed per page load.
package uploadflow

import (
	"context"
	"errors"
	"strings"

	"cloudreel-server/internal/domain/video"
)

// State is the upload screen's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateUploaded
	StateSaving
	StateDone
	StateFailed
)

// ErrNoUpload is the validation failure for submitting before the media
// store upload completed. It is raised before any save call is made.
var ErrNoUpload = errors.New("upload a video before saving")

// ErrTitleRequired is the validation failure for a missing title.
var ErrTitleRequired = errors.New("title is required")

// UploadResult is the typed success value of a direct media store upload.
type UploadResult struct {
	PublicID string
	Duration float64
	Bytes    float64
}

// Flow drives idle → uploaded → saving → done/failed. A failed save returns
// to uploaded with the upload result intact, so the form can be resubmitted
// without re-uploading.
type Flow struct {
	svc     video.Service
	ownerID string

	state       State
	title       string
	description string
	upload      *UploadResult
	lastErr     error
}

// New creates an idle flow for the given owner.
func New(svc video.Service, ownerID string) *Flow {
	return &Flow{svc: svc, ownerID: ownerID, state: StateIdle}
}

// CompleteUpload records the media store's upload result.
func (f *Flow) CompleteUpload(result UploadResult) {
	f.upload = &result
	f.state = StateUploaded
}

// SetTitle sets the form title.
func (f *Flow) SetTitle(title string) {
	f.title = title
}

// SetDescription sets the form description.
func (f *Flow) SetDescription(description string) {
	f.description = description
}

// Submit validates the form and saves the video metadata. Validation
// failures surface before any service call.
func (f *Flow) Submit(ctx context.Context) (*video.Video, error) {
	if f.upload == nil {
		f.lastErr = ErrNoUpload
		return nil, ErrNoUpload
	}
	if strings.TrimSpace(f.title) == "" {
		f.lastErr = ErrTitleRequired
		return nil, ErrTitleRequired
	}

	f.state = StateSaving
	created, err := f.svc.Create(ctx, video.CreateParams{
		OwnerID:      f.ownerID,
		Title:        f.title,
		Description:  f.description,
		PublicID:     f.upload.PublicID,
		Duration:     f.upload.Duration,
		OriginalSize: f.upload.Bytes,
	})
	if err != nil {
		// The upload result survives a failed save, so the form can be
		// resubmitted without re-uploading.
		f.state = StateFailed
		f.lastErr = err
		return nil, err
	}

	f.state = StateDone
	f.lastErr = nil
	return created, nil
}

// State returns the current lifecycle state.
func (f *Flow) State() State {
	return f.state
}

// Err returns the most recent validation or save error.
func (f *Flow) Err() error {
	return f.lastErr
}

// Uploaded reports whether a media store upload has completed.
func (f *Flow) Uploaded() bool {
	return f.upload != nil
}
