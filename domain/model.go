package domain

import "time"

type Gender string

const (
	GenderFemale Gender = "F"
	GenderMale   Gender = "M"
)

type VoiceType string

const (
	VoiceTypeAdult VoiceType = "adult"
	VoiceTypeChild VoiceType = "child"
	VoiceTypeRobot VoiceType = "robot"
)

// VoiceProfile identifies a synthesis voice and the backend platform that
// owns it. VoiceCode is the provider-specific identifier sent on the wire;
// Metadata carries provider-specific payload overrides verbatim.
type VoiceProfile struct {
	ID        int64
	Name      string
	Language  string
	Gender    Gender
	Type      VoiceType
	Platform  string
	VoiceCode string
	Metadata  map[string]any
}

// NewVoiceProfile is a VoiceProfile before the store has assigned its ID.
type NewVoiceProfile struct {
	Name      string
	Language  string
	Gender    Gender
	Type      VoiceType
	Platform  string
	VoiceCode string
	Metadata  map[string]any
}

// SynthesisRequest carries the original input text and the read text, which
// is what actually gets normalized and sent to the provider. The two differ
// when the caller pre-processes the text for pronunciation.
type SynthesisRequest struct {
	Text     string
	ReadText string
}

// AudioArtifact is one durably registered synthesis result. At most one
// artifact ever exists per fingerprint.
type AudioArtifact struct {
	Fingerprint    string
	OriginalText   string
	NormalizedText string
	VoiceID        int64
	FileURL        string
	CreatedAt      time.Time
}
