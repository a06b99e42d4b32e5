package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

// Authenticator signs an account in against the backend.
type Authenticator interface {
	Login(ctx context.Context, kind models.AccountKind, email, password string) (models.LoginResponse, error)
}

// Manager owns the session lifecycle: login, refresh, logout and lookup.
type Manager struct {
	repo   Repository
	issuer *Issuer
	auth   Authenticator
	now    func() time.Time
	log    *zap.Logger
}

func NewManager(repo Repository, issuer *Issuer, auth Authenticator, now func() time.Time, log *zap.Logger) *Manager {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{repo: repo, issuer: issuer, auth: auth, now: now, log: log}
}

// Login authenticates with the backend and opens a session holding the
// backend token.
func (m *Manager) Login(ctx context.Context, kind models.AccountKind, email, password string) (*models.Session, Tokens, error) {
	res, err := m.auth.Login(ctx, kind, email, password)
	if err != nil {
		return nil, Tokens{}, err
	}

	now := m.now()
	s := &models.Session{
		ID:            uuid.NewString(),
		Kind:          res.Kind,
		AccountID:     res.Account.ID,
		Name:          res.Account.Name,
		Email:         res.Account.Email,
		UpstreamToken: res.Token,
		ExpiresAt:     now.Add(m.issuer.RefreshTTL()),
	}

	tokens, err := m.issue(ctx, s, now)
	if err != nil {
		return nil, Tokens{}, err
	}

	m.log.Info("session opened",
		zap.String("session_id", s.ID),
		zap.String("kind", string(s.Kind)),
		zap.Int("account_id", s.AccountID),
	)
	return s, tokens, nil
}

// Refresh rotates the refresh token and extends the session.
func (m *Manager) Refresh(ctx context.Context, refreshToken string) (*models.Session, Tokens, error) {
	id, secret, err := SplitRefresh(refreshToken)
	if err != nil {
		return nil, Tokens{}, err
	}
	s, err := m.Authenticate(ctx, id)
	if err != nil {
		return nil, Tokens{}, err
	}
	if err := CheckRefresh(s.RefreshHash, secret); err != nil {
		m.log.Warn("refresh token rejected", zap.String("session_id", id))
		return nil, Tokens{}, err
	}

	now := m.now()
	s.ExpiresAt = now.Add(m.issuer.RefreshTTL())
	tokens, err := m.issue(ctx, s, now)
	if err != nil {
		return nil, Tokens{}, err
	}
	return s, tokens, nil
}

// Authenticate loads a live session by id.
func (m *Manager) Authenticate(ctx context.Context, id string) (*models.Session, error) {
	s, err := m.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Expired(m.now()) {
		return nil, ErrNotFound
	}
	return s, nil
}

// Logout removes the session; the backend token goes with it.
func (m *Manager) Logout(ctx context.Context, id string) error {
	if err := m.repo.Clear(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	m.log.Info("session closed", zap.String("session_id", id))
	return nil
}

func (m *Manager) issue(ctx context.Context, s *models.Session, now time.Time) (Tokens, error) {
	refresh, hash, err := m.issuer.Refresh(s)
	if err != nil {
		return Tokens{}, err
	}
	s.RefreshHash = hash

	access, exp, err := m.issuer.Access(s, now)
	if err != nil {
		return Tokens{}, err
	}
	if err := m.repo.Save(ctx, s); err != nil {
		return Tokens{}, err
	}
	return Tokens{AccessToken: access, RefreshToken: refresh, ExpiresAt: exp}, nil
}
