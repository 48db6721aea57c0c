package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/weekly-signup/internal/domain/contract"
	"github.com/diegoclair/weekly-signup/internal/domain/entity"
)

type signupRepo struct {
	db dbConn
}

func newSignupRepo(db dbConn) contract.SignupRepo {
	return &signupRepo{db: db}
}

func (r *signupRepo) Append(ctx context.Context, bucketKey string, signup entity.Signup) error {
	query := `
		INSERT INTO signups (bucket, name, status)
		VALUES (?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, bucketKey, signup.Name, signup.Status); err != nil {
		return fmt.Errorf("failed to create signup: %w", err)
	}

	return nil
}

func (r *signupRepo) ReadAll(ctx context.Context, bucketKey string) (map[string]string, error) {
	// Ordered by id so that the last inserted record for a name wins
	query := `
		SELECT name, status
		FROM signups
		WHERE bucket = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, bucketKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get signups: %w", err)
	}
	defer rows.Close()

	signups := make(map[string]string)
	for rows.Next() {
		var name, status string
		if err := rows.Scan(&name, &status); err != nil {
			return nil, fmt.Errorf("failed to scan signup: %w", err)
		}
		signups[name] = status
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate signups: %w", err)
	}

	return signups, nil
}

func (r *signupRepo) Buckets(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT bucket
		FROM signups
		ORDER BY bucket ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get buckets: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan bucket: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate buckets: %w", err)
	}

	return keys, nil
}
