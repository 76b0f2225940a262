package inbound

import (
	"context"

	"github.com/ccmarin14/TTS-Service/domain"
)

// SampleEntry is one pre-rendered audio file from a bulk archive: the text
// label it was rendered from and the raw mp3 bytes. Archive parsing happens
// at the HTTP boundary; the importer only sees extracted entries.
type SampleEntry struct {
	Label string
	Audio []byte
}

// ImportReport summarizes one bulk import run.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Failed   []string `json:"failed,omitempty"`
}

// SampleImporterPort registers pre-rendered audio through the same
// fingerprint + upload + metadata tail as live synthesis, skipping entries
// whose fingerprint is already cached.
type SampleImporterPort interface {
	Import(ctx context.Context, entries []SampleEntry, voice domain.VoiceProfile) (ImportReport, error)
}
