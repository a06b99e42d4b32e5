package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

type memoryRepo struct {
	mu   sync.Mutex
	rows map[string]models.Session
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[string]models.Session)}
}

func (r *memoryRepo) Load(_ context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) Save(_ context.Context, s *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.ID] = *s
	return nil
}

func (r *memoryRepo) Clear(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *memoryRepo) ListActive(_ context.Context, now time.Time) ([]models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Session
	for _, s := range r.rows {
		if !s.Expired(now) {
			out = append(out, s)
		}
	}
	return out, nil
}

type stubAuth struct{ err error }

func (a stubAuth) Login(_ context.Context, kind models.AccountKind, email, _ string) (models.LoginResponse, error) {
	if a.err != nil {
		return models.LoginResponse{}, a.err
	}
	return models.LoginResponse{
		Kind:    kind,
		Token:   "backend-token",
		Account: models.Account{ID: 12, Name: "Nile Pharmacy", Email: email},
	}, nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newManager(auth Authenticator) (*Manager, *memoryRepo, *clock) {
	repo := newMemoryRepo()
	c := &clock{t: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	issuer := NewIssuer("test-secret", time.Hour, 24*time.Hour)
	issuer.cost = 4
	return NewManager(repo, issuer, auth, c.now, nil), repo, c
}

func TestLoginStoresSession(t *testing.T) {
	m, repo, _ := newManager(stubAuth{})

	s, tokens, err := m.Login(context.Background(), models.KindPharmacy, "a@b.c", "pw")
	if err != nil {
		t.Fatal(err)
	}
	stored, err := repo.Load(context.Background(), s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.UpstreamToken != "backend-token" || stored.AccountID != 12 {
		t.Errorf("stored = %+v", stored)
	}
	if stored.RefreshHash == "" || stored.RefreshHash == tokens.RefreshToken {
		t.Error("refresh token not hashed")
	}

	parsed, err := jwt.Parse(tokens.AccessToken, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		t.Fatal(err)
	}
	sid, err := SessionID(parsed.Claims.(jwt.MapClaims))
	if err != nil || sid != s.ID {
		t.Errorf("sid = %q, %v; want %q", sid, err, s.ID)
	}
}

func TestLoginPropagatesBackendError(t *testing.T) {
	want := errors.New("Login failed")
	m, repo, _ := newManager(stubAuth{err: want})

	if _, _, err := m.Login(context.Background(), models.KindDoctor, "a@b.c", "pw"); !errors.Is(err, want) {
		t.Fatalf("err = %v", err)
	}
	if len(repo.rows) != 0 {
		t.Error("session stored after failed login")
	}
}

func TestRefreshRotates(t *testing.T) {
	m, _, c := newManager(stubAuth{})
	ctx := context.Background()

	s, first, err := m.Login(ctx, models.KindPharmacy, "a@b.c", "pw")
	if err != nil {
		t.Fatal(err)
	}

	c.t = c.t.Add(time.Hour)
	refreshed, second, err := m.Refresh(ctx, first.RefreshToken)
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.ID != s.ID {
		t.Errorf("refresh opened a new session")
	}
	if !refreshed.ExpiresAt.After(s.ExpiresAt) {
		t.Error("session not extended")
	}
	if _, _, err := m.Refresh(ctx, first.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused refresh token err = %v, want ErrInvalidToken", err)
	}
	if _, _, err := m.Refresh(ctx, second.RefreshToken); err != nil {
		t.Errorf("rotated token rejected: %v", err)
	}
}

func TestAuthenticateExpired(t *testing.T) {
	m, _, c := newManager(stubAuth{})
	ctx := context.Background()

	s, _, err := m.Login(ctx, models.KindPharmacy, "a@b.c", "pw")
	if err != nil {
		t.Fatal(err)
	}
	c.t = s.ExpiresAt
	if _, err := m.Authenticate(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLogout(t *testing.T) {
	m, _, _ := newManager(stubAuth{})
	ctx := context.Background()

	s, _, err := m.Login(ctx, models.KindPharmacy, "a@b.c", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Logout(ctx, s.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Authenticate(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("session survived logout: %v", err)
	}
}

func TestSplitRefresh(t *testing.T) {
	for _, bad := range []string{"", "nodot", ".secret", "id."} {
		if _, _, err := SplitRefresh(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("SplitRefresh(%q) err = %v", bad, err)
		}
	}
}
