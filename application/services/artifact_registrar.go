package services

import (
	"context"
	"errors"

	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/google/uuid"
)

// RegisterArtifactParams carries finished audio bytes plus the texts and
// voice they were produced from.
type RegisterArtifactParams struct {
	Fingerprint    string
	OriginalText   string
	NormalizedText string
	VoiceID        int64
	Audio          []byte
}

// ArtifactRegistrar is the shared persistence tail of the pipeline: scratch
// write, blob upload, metadata insert, cache update. Both the live synthesis
// miss branch and bulk import go through it.
//
// The upload happens strictly before the metadata insert, so an existing
// metadata row always implies an existing blob. A crash in between leaves an
// orphaned blob, never a dangling pointer.
type ArtifactRegistrar struct {
	logger    outbound.LoggerPort
	scratch   outbound.ScratchStorePort
	artifacts outbound.ArtifactStorePort
	metadata  outbound.MetadataStorePort
	cache     *CacheIndex
}

func NewArtifactRegistrar(logger outbound.LoggerPort, scratch outbound.ScratchStorePort,
	artifacts outbound.ArtifactStorePort, metadata outbound.MetadataStorePort, cache *CacheIndex) *ArtifactRegistrar {
	return &ArtifactRegistrar{
		logger:    logger,
		scratch:   scratch,
		artifacts: artifacts,
		metadata:  metadata,
		cache:     cache,
	}
}

// Register persists audio durably and records its fingerprint, returning the
// artifact's location URL. The scratch file is removed on every exit path.
//
// Losing the unique-index race to a concurrent writer is not a failure: the
// blob key is derived from the fingerprint, so both writers uploaded the same
// object, and the winner's row is returned.
func (r *ArtifactRegistrar) Register(ctx context.Context, params RegisterArtifactParams) (string, error) {
	path, err := r.scratch.Write(uuid.NewString(), params.Audio)
	if err != nil {
		return "", err
	}
	defer func() {
		if rmErr := r.scratch.Remove(path); rmErr != nil {
			r.logger.ErrorWithFields(rmErr, "failed to remove scratch file", map[string]interface{}{
				"path": path,
			})
		}
	}()

	url, err := r.artifacts.Upload(ctx, path, params.Fingerprint)
	if err != nil {
		return "", err
	}

	err = r.metadata.Insert(ctx, domain.AudioArtifact{
		Fingerprint:    params.Fingerprint,
		OriginalText:   params.OriginalText,
		NormalizedText: params.NormalizedText,
		VoiceID:        params.VoiceID,
		FileURL:        url,
	})
	if errors.Is(err, domain.ErrDuplicateFingerprint) {
		existing, findErr := r.metadata.FindByFingerprint(ctx, params.Fingerprint)
		if findErr == nil && existing != nil {
			r.cache.Insert(params.Fingerprint, existing.FileURL)
			return existing.FileURL, nil
		}
		r.cache.Insert(params.Fingerprint, url)
		return url, nil
	}
	if err != nil {
		r.logger.ErrorWithFields(err, "metadata insert failed after upload, blob is orphaned", map[string]interface{}{
			"fingerprint": params.Fingerprint,
			"url":         url,
		})
		return "", &domain.PersistenceError{Fingerprint: params.Fingerprint, Err: err}
	}

	r.cache.Insert(params.Fingerprint, url)
	return url, nil
}
