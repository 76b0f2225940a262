package dto

// CreateVoiceRequest registers a new voice profile. Metadata is passed
// through verbatim to providers that honor it.
type CreateVoiceRequest struct {
	VoiceName string         `json:"voice_name" binding:"required"`
	Language  string         `json:"language" binding:"required"`
	Gender    string         `json:"gender" binding:"required"`
	Type      string         `json:"type" binding:"required"`
	Platform  string         `json:"platform" binding:"required"`
	Model     string         `json:"model" binding:"required"`
	Metadata  map[string]any `json:"metadata"`
}

type CreateVoiceResponse struct {
	ID        int64          `json:"id"`
	VoiceName string         `json:"voice_name"`
	Language  string         `json:"language"`
	Gender    string         `json:"gender"`
	Type      string         `json:"type"`
	Platform  string         `json:"platform"`
	Model     string         `json:"model"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
