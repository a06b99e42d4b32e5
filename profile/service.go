package profile

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meinhoongagan/pharmacy-portal/cache"
	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/timezone"
)

// ErrUploadsDisabled is returned when no media uploader is configured.
var ErrUploadsDisabled = errors.New("document uploads are not configured")

// Client is the part of the backend client this service needs.
type Client interface {
	FetchProfile(ctx context.Context, token string, kind models.AccountKind) (*models.Pharmacy, error)
	UpdateProfile(ctx context.Context, token string, kind models.AccountKind, fields map[string]any) (*models.Pharmacy, error)
}

// Uploader stores a document and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID, folder string) (string, error)
}

// Service loads the signed-in profile and the timezone derived from it.
type Service struct {
	client   Client
	query    *cache.Query
	memo     *timezone.Memo
	uploader Uploader
	log      *zap.Logger
}

func NewService(client Client, query *cache.Query, memo *timezone.Memo, uploader Uploader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, query: query, memo: memo, uploader: uploader, log: log}
}

func profileKey(sess *models.Session) string {
	return "profile:" + sess.ID
}

// Profile returns the cached profile, refetching it when stale.
func (s *Service) Profile(ctx context.Context, sess *models.Session) (*models.Pharmacy, error) {
	return cache.Fetch(ctx, s.query, profileKey(sess), func(ctx context.Context) (*models.Pharmacy, error) {
		return s.client.FetchProfile(ctx, sess.UpstreamToken, sess.Kind)
	})
}

// Timezone resolves the zone for the session's profile. While the profile
// is unavailable the default zone is used.
func (s *Service) Timezone(ctx context.Context, sess *models.Session) (*timezone.Context, *models.Pharmacy) {
	p, err := s.Profile(ctx, sess)
	if err != nil {
		s.log.Warn("profile unavailable, using default timezone",
			zap.String("session_id", sess.ID),
			zap.Int("account_id", sess.AccountID),
			zap.Error(err),
		)
	}
	return s.memo.For(p), p
}

// UploadInsuranceDocument stores the document and records its URL on the
// profile.
func (s *Service) UploadInsuranceDocument(ctx context.Context, sess *models.Session, file io.Reader) (*models.Pharmacy, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	publicID := fmt.Sprintf("%s-%d-%s", sess.Kind, sess.AccountID, uuid.NewString())
	url, err := s.uploader.Upload(ctx, file, publicID, "insurance_documents")
	if err != nil {
		return nil, fmt.Errorf("upload insurance document: %w", err)
	}

	p, err := s.client.UpdateProfile(ctx, sess.UpstreamToken, sess.Kind, map[string]any{
		"insuranceDocument": url,
	})
	if err != nil {
		return nil, err
	}

	s.Forget(ctx, sess)
	return p, nil
}

// Forget drops the cached profile for a closed session.
func (s *Service) Forget(ctx context.Context, sess *models.Session) {
	if err := s.query.Invalidate(ctx, profileKey(sess)); err != nil {
		s.log.Warn("profile cache invalidation failed", zap.String("session_id", sess.ID), zap.Error(err))
	}
}
