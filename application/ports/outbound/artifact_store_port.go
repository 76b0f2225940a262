package outbound

import "context"

// ArtifactStorePort persists finished audio bytes durably and returns the
// retrievable location. Implementations key objects as audios/{objectKey}.mp3.
type ArtifactStorePort interface {
	Upload(ctx context.Context, localPath string, objectKey string) (string, error)
}
