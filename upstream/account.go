package upstream

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

const (
	msgLogin         = "Login failed"
	msgFetchProfile  = "Failed to fetch profile"
	msgUpdateProfile = "Failed to update profile"
	msgFetchReviews  = "Failed to fetch reviews"
)

// Login signs in against the backend endpoint of the given account kind.
func (c *Client) Login(ctx context.Context, kind models.AccountKind, email, password string) (models.LoginResponse, error) {
	var raw json.RawMessage
	err := c.do(ctx, call{
		method: fiber.MethodPost,
		path:   "/" + string(kind) + "/login",
		body: map[string]string{
			"email":    email,
			"password": password,
		},
		op: msgLogin,
	}, &raw)
	if err != nil {
		return models.LoginResponse{}, err
	}

	resp, err := models.DecodeLoginResponse(kind, raw)
	if err != nil {
		return models.LoginResponse{}, &FetchError{Op: msgLogin, Message: msgLogin, Err: err}
	}
	return resp, nil
}

// FetchProfile loads the signed-in account's profile.
func (c *Client) FetchProfile(ctx context.Context, token string, kind models.AccountKind) (*models.Pharmacy, error) {
	var p models.Pharmacy
	err := c.do(ctx, call{
		method: fiber.MethodGet,
		path:   "/" + string(kind) + "/profile",
		token:  token,
		op:     msgFetchProfile,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile patches profile fields and returns the stored profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, kind models.AccountKind, fields map[string]any) (*models.Pharmacy, error) {
	var p models.Pharmacy
	err := c.do(ctx, call{
		method: fiber.MethodPatch,
		path:   "/" + string(kind) + "/profile",
		token:  token,
		body:   fields,
		op:     msgUpdateProfile,
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FetchReviews lists patient reviews for a provider.
func (c *Client) FetchReviews(ctx context.Context, token string, providerID int) ([]models.Review, error) {
	var reviews []models.Review
	err := c.do(ctx, call{
		method: fiber.MethodGet,
		path:   "/ratings/provider/" + strconv.Itoa(providerID),
		token:  token,
		op:     msgFetchReviews,
	}, &reviews)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}
