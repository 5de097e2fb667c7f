package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/twinlab/healthsync/internal/logger"
)

type preferenceRepository struct {
	*DB
	logger *logger.Logger
}

// NewPreferenceRepository returns a [PreferenceStore] backed by the local
// SQLite database.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceStore {
	return &preferenceRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *preferenceRepository) GetString(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("value").
		From("preferences").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build preference query (key=%s): %w", key, err)
	}

	var value string
	err = p.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.GetString").
			Str("key", key).
			Msg("failed to query preference")
		return "", fmt.Errorf("failed to query preference (key=%s): %w", key, err)
	}

	return value, nil
}

func (p *preferenceRepository) SetString(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("preferences").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build preference upsert (key=%s): %w", key, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.SetString").
			Str("key", key).
			Msg("failed to execute preference upsert")
		return fmt.Errorf("failed to save preference (key=%s): %w", key, err)
	}

	return nil
}

func (p *preferenceRepository) GetBool(ctx context.Context, key string) (bool, error) {
	raw, err := p.GetString(ctx, key)
	if err != nil {
		return false, err
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: key %s holds %q", ErrInvalidPreferenceValue, key, raw)
	}

	return value, nil
}

func (p *preferenceRepository) SetBool(ctx context.Context, key string, value bool) error {
	return p.SetString(ctx, key, strconv.FormatBool(value))
}

func (p *preferenceRepository) GetTime(ctx context.Context, key string) (time.Time, error) {
	raw, err := p.GetString(ctx, key)
	if err != nil {
		return time.Time{}, err
	}

	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: key %s holds %q", ErrInvalidPreferenceValue, key, raw)
	}

	return value, nil
}

func (p *preferenceRepository) SetTime(ctx context.Context, key string, value time.Time) error {
	return p.SetString(ctx, key, value.UTC().Format(time.RFC3339))
}

func (p *preferenceRepository) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("preferences").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build preference delete (key=%s): %w", key, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "preferenceRepository.Remove").
			Str("key", key).
			Msg("failed to execute preference delete")
		return fmt.Errorf("failed to remove preference (key=%s): %w", key, err)
	}

	return nil
}
