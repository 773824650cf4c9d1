package journey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SourceFile     = "file"
	SourceSnapshot = "snapshot"
	SourceBuiltin  = "builtin"
)

// Service loads and publishes catalogs.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Load picks the catalog to serve: an explicit file, then the latest
// published snapshot, then the built-in catalog. It returns the catalog and
// the name of the source it came from.
func (s *Service) Load(ctx context.Context, catalogFile string) (Config, string, error) {
	if path := strings.TrimSpace(catalogFile); path != "" {
		cfg, err := LoadFile(path)
		if err != nil {
			return Config{}, "", err
		}
		return cfg, SourceFile, nil
	}
	if s != nil && s.Repo != nil {
		snap, err := s.Repo.Latest(ctx)
		switch {
		case err == nil:
			if err := snap.Config.Validate(); err != nil {
				return Config{}, "", fmt.Errorf("snapshot %s: %w", snap.ID, err)
			}
			return snap.Config, SourceSnapshot, nil
		case errors.Is(err, ErrNotFound):
		default:
			return Config{}, "", fmt.Errorf("load latest snapshot: %w", err)
		}
	}
	return Default(), SourceBuiltin, nil
}

// Publish stores cfg as a new snapshot. When the latest snapshot already has
// the same checksum it is returned unchanged and created is false.
func (s *Service) Publish(ctx context.Context, cfg Config) (snap Snapshot, created bool, err error) {
	if s == nil || s.Repo == nil {
		return Snapshot{}, false, errors.New("catalog repo not configured")
	}
	if err := cfg.Validate(); err != nil {
		return Snapshot{}, false, err
	}
	sum := Checksum(cfg)

	latest, err := s.Repo.Latest(ctx)
	switch {
	case err == nil:
		if latest.Checksum == sum {
			return latest, false, nil
		}
	case errors.Is(err, ErrNotFound):
	default:
		return Snapshot{}, false, fmt.Errorf("load latest snapshot: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	snap = Snapshot{
		ID:        uuid.NewString(),
		Checksum:  sum,
		Config:    cfg,
		CreatedAt: now().UTC(),
	}
	if err := s.Repo.Save(ctx, snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("save snapshot: %w", err)
	}
	return snap, true, nil
}
