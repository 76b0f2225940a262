package outbound

import (
	"context"

	"github.com/ccmarin14/TTS-Service/domain"
)

// MetadataStorePort is the durable fingerprint -> artifact mapping, the
// source of truth behind the in-memory cache index.
type MetadataStorePort interface {
	// FindByFingerprint returns nil when no artifact is registered.
	FindByFingerprint(ctx context.Context, fingerprint string) (*domain.AudioArtifact, error)
	// Insert registers an artifact. It returns domain.ErrDuplicateFingerprint
	// when the fingerprint already has a row; the unique index is the sole
	// arbiter of concurrent duplicate registrations.
	Insert(ctx context.Context, artifact domain.AudioArtifact) error
	// LoadAll returns the full fingerprint -> location mapping. Used once, at
	// cache index construction.
	LoadAll(ctx context.Context) (map[string]string, error)
}
