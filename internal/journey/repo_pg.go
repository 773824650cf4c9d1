package journey

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Save(ctx context.Context, snap Snapshot) error {
	payload, err := json.Marshal(snap.Config)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	const query = `
INSERT INTO catalog_snapshots (id, checksum, payload, created_at)
VALUES ($1, $2, $3, COALESCE($4, now()))`
	_, err = r.DB.ExecContext(ctx, query,
		snap.ID,
		snap.Checksum,
		payload,
		nullableTime(snap),
	)
	return err
}

func (r *PGRepo) Latest(ctx context.Context) (Snapshot, error) {
	const query = `
SELECT id, checksum, payload, created_at
FROM catalog_snapshots
ORDER BY created_at DESC
LIMIT 1`
	var snap Snapshot
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&snap.ID,
		&snap.Checksum,
		&payload,
		&snap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}
	if err := json.Unmarshal(payload, &snap.Config); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", snap.ID, err)
	}
	return snap, nil
}

func nullableTime(snap Snapshot) any {
	if snap.CreatedAt.IsZero() {
		return nil
	}
	return snap.CreatedAt
}
