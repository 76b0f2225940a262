package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ccmarin14/TTS-Service/application/ports/inbound"
	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
)

var languagePattern = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)

type voiceCatalog struct {
	logger outbound.LoggerPort
	voices outbound.VoiceStorePort
}

func NewVoiceCatalog(logger outbound.LoggerPort, voices outbound.VoiceStorePort) inbound.VoiceCatalogPort {
	return &voiceCatalog{
		logger: logger,
		voices: voices,
	}
}

func (v *voiceCatalog) CreateVoice(ctx context.Context, voice domain.NewVoiceProfile) (domain.VoiceProfile, error) {
	if voice.Name == "" {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "voice_name", Reason: "must not be blank"}
	}
	if !languagePattern.MatchString(voice.Language) {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "language", Reason: `must match "xx-YY", e.g. "en-US"`}
	}
	if voice.Platform == "" {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "platform", Reason: "must not be blank"}
	}
	if voice.VoiceCode == "" {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "model", Reason: "must not be blank"}
	}

	created, err := v.voices.CreateVoice(ctx, voice)
	if err != nil {
		return domain.VoiceProfile{}, err
	}
	v.logger.InfoWithFields("voice profile created", map[string]interface{}{
		"id":       created.ID,
		"platform": created.Platform,
		"name":     created.Name,
	})
	return created, nil
}

// ListVoices returns all profiles organized platform -> language -> type -> gender.
func (v *voiceCatalog) ListVoices(ctx context.Context) (inbound.OrganizedVoices, error) {
	voices, err := v.voices.ListVoices(ctx)
	if err != nil {
		return nil, err
	}

	organized := make(inbound.OrganizedVoices)
	for _, voice := range voices {
		byLanguage, ok := organized[voice.Platform]
		if !ok {
			byLanguage = make(map[string]map[domain.VoiceType]map[domain.Gender][]inbound.VoiceSummary)
			organized[voice.Platform] = byLanguage
		}
		byType, ok := byLanguage[voice.Language]
		if !ok {
			byType = make(map[domain.VoiceType]map[domain.Gender][]inbound.VoiceSummary)
			byLanguage[voice.Language] = byType
		}
		byGender, ok := byType[voice.Type]
		if !ok {
			byGender = make(map[domain.Gender][]inbound.VoiceSummary)
			byType[voice.Type] = byGender
		}
		byGender[voice.Gender] = append(byGender[voice.Gender], inbound.VoiceSummary{
			ID:        voice.ID,
			Name:      voice.Name,
			VoiceCode: voice.VoiceCode,
			Metadata:  voice.Metadata,
		})
	}
	return organized, nil
}

func (v *voiceCatalog) ResolveByID(ctx context.Context, id int64) (domain.VoiceProfile, error) {
	voice, err := v.voices.FindVoiceByID(ctx, id)
	if err != nil {
		return domain.VoiceProfile{}, err
	}
	if voice == nil {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "model", Reason: fmt.Sprintf("no voice profile with id %d", id)}
	}
	return *voice, nil
}

func (v *voiceCatalog) ResolveByName(ctx context.Context, name string, language string) (domain.VoiceProfile, error) {
	if name == "" {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "model", Reason: "must not be blank"}
	}
	if !languagePattern.MatchString(language) {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "language", Reason: `must match "xx-YY", e.g. "en-US"`}
	}
	voice, err := v.voices.FindVoiceByName(ctx, name, language)
	if err != nil {
		return domain.VoiceProfile{}, err
	}
	if voice == nil {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "model", Reason: fmt.Sprintf("no voice profile named %q for %s", name, language)}
	}
	return *voice, nil
}

func (v *voiceCatalog) ResolveByTraits(ctx context.Context, language string, gender domain.Gender, voiceType domain.VoiceType) (domain.VoiceProfile, error) {
	if !languagePattern.MatchString(language) {
		return domain.VoiceProfile{}, &domain.ValidationError{Field: "language", Reason: `must match "xx-YY", e.g. "en-US"`}
	}
	if gender == "" {
		gender = domain.GenderFemale
	}
	if voiceType == "" {
		voiceType = domain.VoiceTypeAdult
	}
	voices, err := v.voices.FindVoicesByTraits(ctx, language, gender, voiceType)
	if err != nil {
		return domain.VoiceProfile{}, err
	}
	if len(voices) == 0 {
		return domain.VoiceProfile{}, &domain.ValidationError{
			Field:  "model",
			Reason: fmt.Sprintf("no %s %s voice for %s", voiceType, gender, language),
		}
	}
	return voices[0], nil
}
