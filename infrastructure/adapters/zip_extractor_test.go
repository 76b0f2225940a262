package adapters

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildArchive(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, data := range files {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func TestExtractSampleArchive(t *testing.T) {
	archive := buildArchive(t, map[string][]byte{
		"Hola mundo.mp3":    []byte("audio-1"),
		"samples/Adios.mp3": []byte("audio-2"),
	})

	entries, err := ExtractSampleArchive(archive)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byLabel := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		byLabel[entry.Label] = entry.Audio
	}
	assert.Equal(t, []byte("audio-1"), byLabel["Hola mundo"])
	assert.Equal(t, []byte("audio-2"), byLabel["Adios"])
}

func TestExtractSampleArchiveRejectsOtherExtensions(t *testing.T) {
	archive := buildArchive(t, map[string][]byte{
		"Hola mundo.mp3": []byte("audio-1"),
		"notes.txt":      []byte("not audio"),
	})

	_, err := ExtractSampleArchive(archive)
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Reason, ".txt")
}

func TestExtractSampleArchiveRejectsEmptyZip(t *testing.T) {
	archive := buildArchive(t, nil)

	_, err := ExtractSampleArchive(archive)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestExtractSampleArchiveRejectsGarbage(t *testing.T) {
	_, err := ExtractSampleArchive([]byte("definitely not a zip"))
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
