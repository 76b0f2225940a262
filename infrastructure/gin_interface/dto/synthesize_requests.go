package dto

// SynthesizeByIDRequest selects the voice by its numeric profile id.
type SynthesizeByIDRequest struct {
	Text  string `json:"text" binding:"required"`
	Read  string `json:"read" binding:"required"`
	Model int64  `json:"model" binding:"required"`
}

// SynthesizeByNameRequest selects the voice by display name and language.
type SynthesizeByNameRequest struct {
	Text     string `json:"text" binding:"required"`
	Read     string `json:"read" binding:"required"`
	Language string `json:"language" binding:"required"`
	Model    string `json:"model" binding:"required"`
}

// SynthesizeByTraitsRequest selects the first voice matching language,
// gender and type. Gender and type fall back to "F" and "adult".
type SynthesizeByTraitsRequest struct {
	Text     string `json:"text" binding:"required"`
	Read     string `json:"read" binding:"required"`
	Language string `json:"language" binding:"required"`
	Gender   string `json:"gender"`
	Type     string `json:"type"`
}

type SynthesizeResponse struct {
	FileURL string `json:"file_url"`
}
