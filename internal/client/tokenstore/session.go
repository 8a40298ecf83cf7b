package tokenstore

import (
	"context"
	"fmt"

	"github.com/gin-contrib/sessions"

	"github.com/dmitrijs2005/sitecms/internal/common"
)

// SessionStore keeps the token in a gin cookie session. It is bound to a
// single request.
type SessionStore struct {
	session sessions.Session
}

func NewSessionStore(session sessions.Session) *SessionStore {
	return &SessionStore{session: session}
}

func (s *SessionStore) Set(_ context.Context, token string) error {
	s.session.Set(common.AuthTokenKey, token)
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(_ context.Context) (string, bool) {
	token, ok := s.session.Get(common.AuthTokenKey).(string)
	return token, ok
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.session.Delete(common.AuthTokenKey)
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Has(ctx context.Context) bool {
	_, ok := s.Get(ctx)
	return ok
}
