// Package assetid issues and validates the reel_<ulid> identifiers CloudReel
// assigns to video records.
package assetid

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const prefix = "reel_"

var (
	entropyOnce sync.Once
	entropy     *ulid.MonotonicEntropy
)

// entropySource is shared so identifiers issued within the same millisecond
// stay monotonic.
func entropySource() *ulid.MonotonicEntropy {
	entropyOnce.Do(func() {
		entropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	})
	return entropy
}

// New issues a reel_<ulid> record identifier, lowercased for URL use.
func New() string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropySource())
	return prefix + strings.ToLower(id.String())
}

// IsValid reports whether value is a well-formed record identifier.
func IsValid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Parse extracts the ULID from a reel_<ulid> identifier. Values without the
// prefix are rejected; bare ULIDs are not record identifiers.
func Parse(value string) (ulid.ULID, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(value), prefix)
	if !ok {
		return ulid.ULID{}, fmt.Errorf("missing %q prefix", prefix)
	}
	return ulid.Parse(raw)
}
