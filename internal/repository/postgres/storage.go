package postgres

import (
	"context"
	"database/sql"
)

// StorageRepo implements repository.StorageRepository
type StorageRepo struct {
	db *sql.DB
}

// NewStorageRepo creates a new session storage repository
func NewStorageRepo(db *sql.DB) *StorageRepo {
	return &StorageRepo{db: db}
}

// GetValue returns the value stored for the user under key
func (r *StorageRepo) GetValue(ctx context.Context, userID int64, key string) (string, bool, error) {
	var value string
	query := `SELECT value FROM session_storage WHERE user_id = $1 AND key = $2`
	err := r.db.QueryRowContext(ctx, query, userID, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// SetValue stores value for the user under key, replacing any previous one
func (r *StorageRepo) SetValue(ctx context.Context, userID int64, key, value string) error {
	query := `
		INSERT INTO session_storage (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query, userID, key, value)
	return err
}

// DeleteValue removes key for the user. Missing keys are not an error.
func (r *StorageRepo) DeleteValue(ctx context.Context, userID int64, key string) error {
	query := `DELETE FROM session_storage WHERE user_id = $1 AND key = $2`
	_, err := r.db.ExecContext(ctx, query, userID, key)
	return err
}

// DeleteStale removes values not written for the given number of days
func (r *StorageRepo) DeleteStale(ctx context.Context, days int) (int64, error) {
	query := `
		DELETE FROM session_storage
		WHERE updated_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.ExecContext(ctx, query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
