package outbound

import (
	"context"

	"github.com/ccmarin14/TTS-Service/domain"
)

// VoiceStorePort is the administrative voice-profile table. Profiles are
// immutable once created.
type VoiceStorePort interface {
	CreateVoice(ctx context.Context, voice domain.NewVoiceProfile) (domain.VoiceProfile, error)
	ListVoices(ctx context.Context) ([]domain.VoiceProfile, error)
	// Find methods return nil when no profile matches.
	FindVoiceByID(ctx context.Context, id int64) (*domain.VoiceProfile, error)
	FindVoiceByName(ctx context.Context, name string, language string) (*domain.VoiceProfile, error)
	FindVoicesByTraits(ctx context.Context, language string, gender domain.Gender, voiceType domain.VoiceType) ([]domain.VoiceProfile, error)
}
