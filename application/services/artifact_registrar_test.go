package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/ccmarin14/TTS-Service/infrastructure/adapters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrarFixture struct {
	metadata   *fakeMetadataStore
	artifacts  *fakeArtifactStore
	cache      *CacheIndex
	scratchDir string
	subject    *ArtifactRegistrar
}

func newRegistrarFixture(t *testing.T) *registrarFixture {
	t.Helper()

	logger := adapters.NewZerologWrapper()
	metadata := newFakeMetadataStore()
	artifacts := &fakeArtifactStore{}

	scratchDir := t.TempDir()
	scratch, err := adapters.NewScratchStore(scratchDir)
	require.NoError(t, err)

	cache, err := NewCacheIndex(context.Background(), metadata, logger)
	require.NoError(t, err)

	return &registrarFixture{
		metadata:   metadata,
		artifacts:  artifacts,
		cache:      cache,
		scratchDir: scratchDir,
		subject:    NewArtifactRegistrar(logger, scratch, artifacts, metadata, cache),
	}
}

func registrationFor(fingerprint string) RegisterArtifactParams {
	return RegisterArtifactParams{
		Fingerprint:    fingerprint,
		OriginalText:   "Hello world",
		NormalizedText: "Hello world.",
		VoiceID:        7,
		Audio:          []byte("mp3-bytes"),
	}
}

func TestRegisterPersistsAndUpdatesCache(t *testing.T) {
	f := newRegistrarFixture(t)

	url, err := f.subject.Register(context.Background(), registrationFor("fp-1"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/audios/fp-1.mp3", url)

	cached, ok := f.cache.Lookup("fp-1")
	assert.True(t, ok)
	assert.Equal(t, url, cached)
	assert.Equal(t, 1, f.metadata.insertCount())

	files, err := os.ReadDir(f.scratchDir)
	require.NoError(t, err)
	assert.Empty(t, files, "scratch file must be gone after a successful registration")
}

func TestRegisterCleansScratchWhenUploadFails(t *testing.T) {
	f := newRegistrarFixture(t)
	f.artifacts.uploadErr = &domain.StorageError{Op: "upload to S3", Err: errors.New("no credentials")}

	_, err := f.subject.Register(context.Background(), registrationFor("fp-1"))

	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)

	files, readErr := os.ReadDir(f.scratchDir)
	require.NoError(t, readErr)
	assert.Empty(t, files, "scratch file must be gone after a failed upload")
	assert.Equal(t, 0, f.metadata.insertCount())
}

func TestRegisterDuplicateReturnsWinningURL(t *testing.T) {
	f := newRegistrarFixture(t)
	f.metadata.artifacts["fp-1"] = domain.AudioArtifact{
		Fingerprint: "fp-1",
		FileURL:     "https://cdn.example.com/audios/winner.mp3",
	}

	url, err := f.subject.Register(context.Background(), registrationFor("fp-1"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/audios/winner.mp3", url)

	cached, ok := f.cache.Lookup("fp-1")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/audios/winner.mp3", cached)
}

func TestRegisterPersistenceFailureIsTyped(t *testing.T) {
	f := newRegistrarFixture(t)
	f.metadata.insertErr = errors.New("too many connections")

	_, err := f.subject.Register(context.Background(), registrationFor("fp-1"))

	var persistenceErr *domain.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "fp-1", persistenceErr.Fingerprint)

	_, ok := f.cache.Lookup("fp-1")
	assert.False(t, ok)
}
