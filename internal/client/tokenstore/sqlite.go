package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sitecms/internal/common"
	"github.com/dmitrijs2005/sitecms/internal/logging"
)

// SQLiteStore keeps the token in the local metadata table so that it
// survives restarts of the CLI.
type SQLiteStore struct {
	repo metadata.Repository
	log  logging.Logger
}

func NewSQLiteStore(repo metadata.Repository, log logging.Logger) *SQLiteStore {
	if log == nil {
		log = logging.NewNop()
	}
	return &SQLiteStore{repo: repo, log: log}
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, common.AuthTokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool) {
	v, err := s.repo.Get(ctx, common.AuthTokenKey)
	if err != nil {
		s.log.Warn(ctx, "token store read failed", "error", err)
		return "", false
	}
	if v == nil {
		return "", false
	}
	return string(v), true
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.AuthTokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Has(ctx context.Context) bool {
	_, ok := s.Get(ctx)
	return ok
}

// SavedAt reports when the current token was written.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, bool) {
	at, ok, err := s.repo.UpdatedAt(ctx, common.AuthTokenKey)
	if err != nil {
		s.log.Warn(ctx, "token timestamp read failed", "error", err)
		return time.Time{}, false
	}
	return at, ok
}
