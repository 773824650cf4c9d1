package journey

import (
	"context"
	"time"
)

// Snapshot is a published version of the catalog.
type Snapshot struct {
	ID        string    `json:"id"`
	Checksum  string    `json:"checksum"`
	Config    Config    `json:"config"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repo persists catalog snapshots.
type Repo interface {
	Save(ctx context.Context, snap Snapshot) error
	Latest(ctx context.Context) (Snapshot, error)
}
