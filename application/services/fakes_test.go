package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
)

type fakeMetadataStore struct {
	mu        sync.Mutex
	artifacts map[string]domain.AudioArtifact
	insertErr error
	loadErr   error
	inserts   int
}

func newFakeMetadataStore() *fakeMetadataStore {
	return &fakeMetadataStore{artifacts: make(map[string]domain.AudioArtifact)}
}

func (f *fakeMetadataStore) FindByFingerprint(_ context.Context, fingerprint string) (*domain.AudioArtifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	artifact, ok := f.artifacts[fingerprint]
	if !ok {
		return nil, nil
	}
	return &artifact, nil
}

func (f *fakeMetadataStore) Insert(_ context.Context, artifact domain.AudioArtifact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.artifacts[artifact.Fingerprint]; ok {
		return domain.ErrDuplicateFingerprint
	}
	f.artifacts[artifact.Fingerprint] = artifact
	f.inserts++
	return nil
}

func (f *fakeMetadataStore) LoadAll(_ context.Context) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	urls := make(map[string]string, len(f.artifacts))
	for fingerprint, artifact := range f.artifacts {
		urls[fingerprint] = artifact.FileURL
	}
	return urls, nil
}

func (f *fakeMetadataStore) insertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inserts
}

type fakeArtifactStore struct {
	mu        sync.Mutex
	uploadErr error
	uploads   []string
}

func (f *fakeArtifactStore) Upload(_ context.Context, _ string, objectKey string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, objectKey)
	return "https://cdn.example.com/audios/" + objectKey + ".mp3", nil
}

func (f *fakeArtifactStore) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

type fakeProvider struct {
	platform string
	audio    []byte
	buildErr error
	execErr  error
	execWait chan struct{}
	calls    int32
}

func (f *fakeProvider) Platform() string { return f.platform }

func (f *fakeProvider) BuildRequest(_ context.Context, text string, voice domain.VoiceProfile) (outbound.ProviderRequest, error) {
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return text + "|" + voice.VoiceCode, nil
}

func (f *fakeProvider) ExecuteRequest(_ context.Context, _ outbound.ProviderRequest) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.execWait != nil {
		<-f.execWait
	}
	if f.execErr != nil {
		return nil, f.execErr
	}
	return f.audio, nil
}

func (f *fakeProvider) callCount() int32 {
	return atomic.LoadInt32(&f.calls)
}

type fakeVoiceStore struct {
	mu     sync.Mutex
	nextID int64
	voices []domain.VoiceProfile
	err    error
}

func (f *fakeVoiceStore) CreateVoice(_ context.Context, voice domain.NewVoiceProfile) (domain.VoiceProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.VoiceProfile{}, f.err
	}
	f.nextID++
	created := domain.VoiceProfile{
		ID:        f.nextID,
		Name:      voice.Name,
		Language:  voice.Language,
		Gender:    voice.Gender,
		Type:      voice.Type,
		Platform:  voice.Platform,
		VoiceCode: voice.VoiceCode,
		Metadata:  voice.Metadata,
	}
	f.voices = append(f.voices, created)
	return created, nil
}

func (f *fakeVoiceStore) ListVoices(_ context.Context) ([]domain.VoiceProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.VoiceProfile(nil), f.voices...), nil
}

func (f *fakeVoiceStore) FindVoiceByID(_ context.Context, id int64) (*domain.VoiceProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, voice := range f.voices {
		if voice.ID == id {
			voice := voice
			return &voice, nil
		}
	}
	return nil, nil
}

func (f *fakeVoiceStore) FindVoiceByName(_ context.Context, name string, language string) (*domain.VoiceProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, voice := range f.voices {
		if voice.Name == name && voice.Language == language {
			voice := voice
			return &voice, nil
		}
	}
	return nil, nil
}

func (f *fakeVoiceStore) FindVoicesByTraits(_ context.Context, language string, gender domain.Gender, voiceType domain.VoiceType) ([]domain.VoiceProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []domain.VoiceProfile
	for _, voice := range f.voices {
		if voice.Language == language && voice.Gender == gender && voice.Type == voiceType {
			matched = append(matched, voice)
		}
	}
	return matched, nil
}
