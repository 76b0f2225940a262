package services

import (
	"context"
	"sort"

	"github.com/ccmarin14/TTS-Service/application/ports/inbound"
	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/channel_utils"
	"github.com/ccmarin14/TTS-Service/domain"
)

type sampleImporter struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	cache      *CacheIndex
	registrar  *ArtifactRegistrar
}

func NewSampleImporter(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	cache *CacheIndex, registrar *ArtifactRegistrar) inbound.SampleImporterPort {
	return &sampleImporter{
		logger:     logger,
		workerPool: workerPool,
		cache:      cache,
		registrar:  registrar,
	}
}

type importResult struct {
	label   string
	skipped bool
	err     error
}

// Import pushes pre-rendered samples through the shared registration tail.
// Entries already present in the cache index are skipped without touching
// the blob store. Entries are processed concurrently on the worker pool; a
// failing entry is reported in the report, not fatal to the rest.
func (s *sampleImporter) Import(ctx context.Context, entries []inbound.SampleEntry, voice domain.VoiceProfile) (inbound.ImportReport, error) {
	if len(entries) == 0 {
		return inbound.ImportReport{}, &domain.ValidationError{Field: "archive", Reason: "contains no audio entries"}
	}

	resultChannels := make([]<-chan importResult, 0, len(entries))
	for _, entry := range entries {
		entry := entry
		out := make(chan importResult, 1)
		resultChannels = append(resultChannels, out)

		err := s.workerPool.Submit(func() {
			defer close(out)
			out <- s.importOne(ctx, entry, voice)
		})
		if err != nil {
			close(out)
			return inbound.ImportReport{}, err
		}
	}

	merged := channel_utils.MergeChannels(resultChannels...)

	var report inbound.ImportReport
	for result := range merged {
		switch {
		case result.err != nil:
			s.logger.ErrorWithFields(result.err, "sample import failed", map[string]interface{}{
				"label":    result.label,
				"voice_id": voice.ID,
			})
			report.Failed = append(report.Failed, result.label)
		case result.skipped:
			report.Skipped++
		default:
			report.Imported++
		}
	}
	sort.Strings(report.Failed)

	s.logger.InfoWithFields("sample import finished", map[string]interface{}{
		"voice_id": voice.ID,
		"imported": report.Imported,
		"skipped":  report.Skipped,
		"failed":   len(report.Failed),
	})
	return report, nil
}

func (s *sampleImporter) importOne(ctx context.Context, entry inbound.SampleEntry, voice domain.VoiceProfile) importResult {
	if len(entry.Audio) == 0 {
		return importResult{label: entry.Label, err: &domain.ValidationError{Field: "archive", Reason: "entry has no audio bytes"}}
	}

	normalized := NormalizeText(entry.Label)
	fingerprint := Fingerprint(normalized, voice)

	if _, ok := s.cache.Lookup(fingerprint); ok {
		return importResult{label: entry.Label, skipped: true}
	}

	_, err := s.registrar.Register(ctx, RegisterArtifactParams{
		Fingerprint:    fingerprint,
		OriginalText:   entry.Label,
		NormalizedText: normalized,
		VoiceID:        voice.ID,
		Audio:          entry.Audio,
	})
	return importResult{label: entry.Label, err: err}
}
