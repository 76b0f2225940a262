package inbound

import (
	"context"

	"github.com/ccmarin14/TTS-Service/domain"
)

// OrganizedVoices groups voice summaries by platform -> language -> type -> gender.
type OrganizedVoices map[string]map[string]map[domain.VoiceType]map[domain.Gender][]VoiceSummary

// VoiceSummary is a voice profile stripped of the fields used for grouping.
type VoiceSummary struct {
	ID        int64          `json:"id"`
	Name      string         `json:"voice_name"`
	VoiceCode string         `json:"model"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// VoiceCatalogPort manages and resolves voice profiles.
type VoiceCatalogPort interface {
	CreateVoice(ctx context.Context, voice domain.NewVoiceProfile) (domain.VoiceProfile, error)
	ListVoices(ctx context.Context) (OrganizedVoices, error)
	ResolveByID(ctx context.Context, id int64) (domain.VoiceProfile, error)
	ResolveByName(ctx context.Context, name string, language string) (domain.VoiceProfile, error)
	// ResolveByTraits picks the first profile matching language, gender and
	// voice type.
	ResolveByTraits(ctx context.Context, language string, gender domain.Gender, voiceType domain.VoiceType) (domain.VoiceProfile, error)
}
