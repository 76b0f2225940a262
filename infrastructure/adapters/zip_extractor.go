package adapters

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ccmarin14/TTS-Service/application/ports/inbound"
	"github.com/ccmarin14/TTS-Service/domain"
)

// ExtractSampleArchive validates a ZIP of pre-rendered samples and extracts
// its entries. Each file name minus the extension is the text label the
// audio was rendered from. Only .mp3 entries are accepted; a malformed or
// empty archive is a validation failure, not a server error.
func ExtractSampleArchive(data []byte) ([]inbound.SampleEntry, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &domain.ValidationError{Field: "archive", Reason: "not a valid ZIP file"}
	}

	var entries []inbound.SampleEntry
	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(file.Name))
		if ext != ".mp3" {
			return nil, &domain.ValidationError{Field: "archive", Reason: fmt.Sprintf("extension not allowed: %s", ext)}
		}

		source, err := file.Open()
		if err != nil {
			return nil, &domain.ValidationError{Field: "archive", Reason: fmt.Sprintf("cannot open entry %s", file.Name)}
		}
		audio, err := io.ReadAll(source)
		source.Close()
		if err != nil {
			return nil, &domain.ValidationError{Field: "archive", Reason: fmt.Sprintf("cannot read entry %s", file.Name)}
		}

		label := strings.TrimSuffix(filepath.Base(file.Name), filepath.Ext(file.Name))
		entries = append(entries, inbound.SampleEntry{
			Label: label,
			Audio: audio,
		})
	}

	if len(entries) == 0 {
		return nil, &domain.ValidationError{Field: "archive", Reason: "ZIP file is empty"}
	}
	return entries, nil
}
