package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"

	"github.com/ccmarin14/TTS-Service/domain"
)

// NormalizeText strips surrounding whitespace and appends a period when the
// text does not already end in sentence-terminal punctuation. The normalized
// form is what gets fingerprinted and what is sent to the provider, so the
// cache key always matches the audio actually produced.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	switch text[len(text)-1] {
	case '.', '!', '?':
		return text
	}
	return text + "."
}

// VoiceKey derives the voice-identity half of the cache key. It concatenates
// the first two letters of the language code, the numeric id, the display
// name and the gender. The provider voice code is deliberately excluded:
// profiles pointing at the same underlying voice on different platforms must
// not share artifacts.
func VoiceKey(voice domain.VoiceProfile) string {
	lang := voice.Language
	if len(lang) > 2 {
		lang = lang[:2]
	}
	return lang + strconv.FormatInt(voice.ID, 10) + voice.Name + string(voice.Gender)
}

// Fingerprint computes the cache key for a (normalized text, voice) pair:
// the sha256 hex digest of the cleaned concatenation of text and voice key.
// Pure and deterministic; identical input yields identical output across
// process restarts.
func Fingerprint(normalizedText string, voice domain.VoiceProfile) string {
	cleaned := cleanText(normalizedText + VoiceKey(voice))
	sum := sha256.Sum256([]byte(cleaned))
	return hex.EncodeToString(sum[:])
}

// cleanText drops everything but letters, digits and whitespace so that
// punctuation variants of the same utterance share a fingerprint.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
