package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MetadataSchema is the SQL DDL for the voice-profile and artifact tables.
// Execute it via [PostgresStore.Migrate] or apply it manually during
// deployment. The unique index on audio_hash is the arbiter of the
// at-most-one-artifact-per-fingerprint invariant.
const MetadataSchema = `
CREATE TABLE IF NOT EXISTS information_audios (
    id          BIGSERIAL PRIMARY KEY,
    voice_name  TEXT NOT NULL,
    language    TEXT NOT NULL,
    gender      TEXT NOT NULL,
    type        TEXT NOT NULL,
    platform    TEXT NOT NULL,
    model       TEXT NOT NULL,
    metadata    JSONB,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS generated_audios (
    id              BIGSERIAL PRIMARY KEY,
    audio_hash      TEXT NOT NULL,
    original_text   TEXT NOT NULL,
    input_text      TEXT NOT NULL,
    information_id  BIGINT NOT NULL REFERENCES information_audios(id),
    file_url        TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_generated_audios_hash ON generated_audios(audio_hash);
`

// DB is the database interface used by [PostgresStore]. Both *pgxpool.Pool
// and *pgx.Conn satisfy it.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore persists voice profiles and generated-audio records. It is
// the source of truth mirrored by the in-memory cache index.
type PostgresStore struct {
	db DB
}

var (
	_ outbound.MetadataStorePort = (*PostgresStore)(nil)
	_ outbound.VoiceStorePort    = (*PostgresStore)(nil)
)

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate executes the [MetadataSchema] DDL, creating tables and indexes if
// they do not already exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, MetadataSchema); err != nil {
		return fmt.Errorf("metadata store: migrate: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByFingerprint(ctx context.Context, fingerprint string) (*domain.AudioArtifact, error) {
	row := s.db.QueryRow(ctx,
		`SELECT audio_hash, original_text, input_text, information_id, file_url, created_at
		   FROM generated_audios WHERE audio_hash = $1`, fingerprint)

	var artifact domain.AudioArtifact
	err := row.Scan(&artifact.Fingerprint, &artifact.OriginalText, &artifact.NormalizedText,
		&artifact.VoiceID, &artifact.FileURL, &artifact.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("metadata store: find by fingerprint: %w", err)
	}
	return &artifact, nil
}

// Insert registers an artifact row. ON CONFLICT DO NOTHING makes the unique
// index an atomic insert-if-absent: losing the race reports
// domain.ErrDuplicateFingerprint instead of a constraint violation.
func (s *PostgresStore) Insert(ctx context.Context, artifact domain.AudioArtifact) error {
	tag, err := s.db.Exec(ctx,
		`INSERT INTO generated_audios (audio_hash, original_text, input_text, information_id, file_url)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (audio_hash) DO NOTHING`,
		artifact.Fingerprint, artifact.OriginalText, artifact.NormalizedText, artifact.VoiceID, artifact.FileURL)
	if err != nil {
		return fmt.Errorf("metadata store: insert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDuplicateFingerprint
	}
	return nil
}

func (s *PostgresStore) LoadAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.Query(ctx, `SELECT audio_hash, file_url FROM generated_audios`)
	if err != nil {
		return nil, fmt.Errorf("metadata store: load all: %w", err)
	}
	defer rows.Close()

	urls := make(map[string]string)
	for rows.Next() {
		var fingerprint, url string
		if err := rows.Scan(&fingerprint, &url); err != nil {
			return nil, fmt.Errorf("metadata store: load all: %w", err)
		}
		urls[fingerprint] = url
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("metadata store: load all: %w", err)
	}
	return urls, nil
}

func (s *PostgresStore) CreateVoice(ctx context.Context, voice domain.NewVoiceProfile) (domain.VoiceProfile, error) {
	metadataJSON, err := marshalMetadata(voice.Metadata)
	if err != nil {
		return domain.VoiceProfile{}, fmt.Errorf("voice store: marshal metadata: %w", err)
	}

	row := s.db.QueryRow(ctx,
		`INSERT INTO information_audios (voice_name, language, gender, type, platform, model, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		voice.Name, voice.Language, string(voice.Gender), string(voice.Type), voice.Platform, voice.VoiceCode, metadataJSON)

	var id int64
	if err := row.Scan(&id); err != nil {
		return domain.VoiceProfile{}, fmt.Errorf("voice store: create: %w", err)
	}

	return domain.VoiceProfile{
		ID:        id,
		Name:      voice.Name,
		Language:  voice.Language,
		Gender:    voice.Gender,
		Type:      voice.Type,
		Platform:  voice.Platform,
		VoiceCode: voice.VoiceCode,
		Metadata:  voice.Metadata,
	}, nil
}

const voiceColumns = `id, voice_name, language, gender, type, platform, model, metadata`

func (s *PostgresStore) ListVoices(ctx context.Context) ([]domain.VoiceProfile, error) {
	rows, err := s.db.Query(ctx, `SELECT `+voiceColumns+` FROM information_audios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("voice store: list: %w", err)
	}
	defer rows.Close()
	return scanVoices(rows)
}

func (s *PostgresStore) FindVoiceByID(ctx context.Context, id int64) (*domain.VoiceProfile, error) {
	row := s.db.QueryRow(ctx, `SELECT `+voiceColumns+` FROM information_audios WHERE id = $1`, id)
	voice, err := scanVoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("voice store: find by id: %w", err)
	}
	return &voice, nil
}

func (s *PostgresStore) FindVoiceByName(ctx context.Context, name string, language string) (*domain.VoiceProfile, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+voiceColumns+` FROM information_audios WHERE voice_name = $1 AND language = $2 LIMIT 1`,
		name, language)
	voice, err := scanVoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("voice store: find by name: %w", err)
	}
	return &voice, nil
}

func (s *PostgresStore) FindVoicesByTraits(ctx context.Context, language string, gender domain.Gender, voiceType domain.VoiceType) ([]domain.VoiceProfile, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+voiceColumns+` FROM information_audios
		  WHERE language = $1 AND gender = $2 AND type = $3 ORDER BY id`,
		language, string(gender), string(voiceType))
	if err != nil {
		return nil, fmt.Errorf("voice store: find by traits: %w", err)
	}
	defer rows.Close()
	return scanVoices(rows)
}

func scanVoices(rows pgx.Rows) ([]domain.VoiceProfile, error) {
	var voices []domain.VoiceProfile
	for rows.Next() {
		voice, err := scanVoice(rows)
		if err != nil {
			return nil, fmt.Errorf("voice store: scan: %w", err)
		}
		voices = append(voices, voice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("voice store: scan: %w", err)
	}
	return voices, nil
}

func scanVoice(row pgx.Row) (domain.VoiceProfile, error) {
	var (
		voice        domain.VoiceProfile
		gender       string
		voiceType    string
		metadataJSON []byte
	)
	err := row.Scan(&voice.ID, &voice.Name, &voice.Language, &gender, &voiceType,
		&voice.Platform, &voice.VoiceCode, &metadataJSON)
	if err != nil {
		return domain.VoiceProfile{}, err
	}
	voice.Gender = domain.Gender(gender)
	voice.Type = domain.VoiceType(voiceType)
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &voice.Metadata); err != nil {
			return domain.VoiceProfile{}, err
		}
	}
	return voice, nil
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	return json.Marshal(metadata)
}
