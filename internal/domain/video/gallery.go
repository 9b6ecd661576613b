package video

import (
	"context"
	"errors"
)

// GalleryState is the render state of a gallery view.
type GalleryState int

const (
	GalleryLoading GalleryState = iota
	GalleryFailed
	GalleryLoaded
)

// ErrGalleryLoaded is returned when Load is called more than once; the
// gallery fetches exactly once per mount and failures are user-retried by
// constructing a fresh view.
var ErrGalleryLoaded = errors.New("gallery already loaded")

// Gallery is the per-page-load view model for a user's video collection.
// Each view constructs its own Gallery; there is no shared instance.
type Gallery struct {
	svc     Service
	ownerID string

	state   GalleryState
	cards   []Card
	err     error
	fetched bool
}

// NewGallery creates a gallery view in the loading state.
func NewGallery(svc Service, ownerID string) *Gallery {
	return &Gallery{
		svc:     svc,
		ownerID: ownerID,
		state:   GalleryLoading,
	}
}

// Load fetches the owner's videos once and settles the view into the loaded
// or failed state. A failed gallery is not retried automatically.
func (g *Gallery) Load(ctx context.Context) error {
	if g.fetched {
		return ErrGalleryLoaded
	}
	g.fetched = true

	videos, err := g.svc.ListByOwner(ctx, g.ownerID)
	if err != nil {
		g.state = GalleryFailed
		g.err = err
		return err
	}

	cards := make([]Card, 0, len(videos))
	for _, v := range videos {
		cards = append(cards, g.svc.BuildCard(v))
	}
	g.cards = cards
	g.state = GalleryLoaded
	return nil
}

// State returns the current render state.
func (g *Gallery) State() GalleryState {
	return g.state
}

// Err returns the load failure, if any.
func (g *Gallery) Err() error {
	return g.err
}

// Cards returns the loaded cards in received order.
func (g *Gallery) Cards() []Card {
	return g.cards
}

// Empty reports whether the loaded gallery has no videos; the view shows the
// upload call-to-action in that case.
func (g *Gallery) Empty() bool {
	return g.state == GalleryLoaded && len(g.cards) == 0
}

// MarkPreviewFailed degrades the card at index to its placeholder rendering.
func (g *Gallery) MarkPreviewFailed(index int) {
	if index < 0 || index >= len(g.cards) {
		return
	}
	g.cards[index].PreviewFailed = true
}
