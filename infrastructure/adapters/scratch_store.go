package adapters

import (
	"os"
	"path/filepath"

	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
)

type scratchStore struct {
	dir string
}

// NewScratchStore keeps provider output on local disk between synthesis and
// upload. The directory is created up front so the first write cannot race
// its creation.
func NewScratchStore(dir string) (outbound.ScratchStorePort, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.StorageError{Op: "create scratch dir", Err: err}
	}
	return &scratchStore{dir: dir}, nil
}

func (s *scratchStore) Write(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name+".mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &domain.StorageError{Op: "write scratch file", Err: err}
	}
	return path, nil
}

func (s *scratchStore) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return &domain.StorageError{Op: "remove scratch file", Err: err}
	}
	return nil
}
