package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Tokens are handed to the client after login or refresh.
type Tokens struct {
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Issuer signs access tokens and mints refresh secrets.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	cost       int
}

func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		cost:       bcrypt.DefaultCost,
	}
}

func (i *Issuer) Secret() []byte {
	return i.secret
}

func (i *Issuer) RefreshTTL() time.Duration {
	return i.refreshTTL
}

// Access signs an HS256 token carrying the session id.
func (i *Issuer) Access(s *models.Session, now time.Time) (string, time.Time, error) {
	exp := now.Add(i.accessTTL)
	claims := jwt.MapClaims{
		"sid":  s.ID,
		"kind": string(s.Kind),
		"id":   s.AccountID,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, exp, nil
}

// Refresh returns a new refresh token for s and the bcrypt hash to store.
// The token is "<session id>.<secret>"; only the hash is persisted.
func (i *Issuer) Refresh(s *models.Session) (string, string, error) {
	secret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), i.cost)
	if err != nil {
		return "", "", fmt.Errorf("hash refresh token: %w", err)
	}
	return s.ID + "." + secret, string(hash), nil
}

// SplitRefresh separates the session id from the refresh secret.
func SplitRefresh(token string) (string, string, error) {
	id, secret, ok := strings.Cut(token, ".")
	if !ok || id == "" || secret == "" {
		return "", "", ErrInvalidToken
	}
	return id, secret, nil
}

// CheckRefresh compares a refresh secret against the stored hash.
func CheckRefresh(hash, secret string) error {
	if hash == "" {
		return ErrInvalidToken
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// SessionID extracts the session id from verified access-token claims.
func SessionID(claims jwt.MapClaims) (string, error) {
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("%w: no session id in claims", ErrInvalidToken)
	}
	return sid, nil
}
