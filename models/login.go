package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AccountKind discriminates the account types that can sign in.
type AccountKind string

const (
	KindPharmacy AccountKind = "pharmacy"
	KindHospital AccountKind = "hospital"
	KindBranch   AccountKind = "branch"
	KindDoctor   AccountKind = "doctor"
)

// ParseAccountKind validates a kind coming from a route or a token.
func ParseAccountKind(s string) (AccountKind, error) {
	switch k := AccountKind(s); k {
	case KindPharmacy, KindHospital, KindBranch, KindDoctor:
		return k, nil
	default:
		return "", fmt.Errorf("unknown account kind %q", s)
	}
}

// Account is the identity part of a login response, whatever its envelope.
type Account struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location,omitempty"`
}

// LoginResponse is the decoded result of an upstream login.
type LoginResponse struct {
	Kind    AccountKind
	Token   string
	Account Account
}

var ErrMissingToken = errors.New("login response has no token")

type pharmacyLogin struct {
	Token    string   `json:"token"`
	Pharmacy *Account `json:"pharmacy"`
}

type hospitalLogin struct {
	Token    string   `json:"token"`
	Hospital *Account `json:"hospital"`
}

type branchLogin struct {
	Token  string   `json:"token"`
	Branch *Account `json:"branch"`
}

type doctorLogin struct {
	Token string `json:"token"`
	Account
}

// DecodeLoginResponse maps the login envelope of each account kind onto a
// LoginResponse. Every kind has exactly one known shape.
func DecodeLoginResponse(kind AccountKind, body []byte) (LoginResponse, error) {
	var (
		token   string
		account *Account
	)

	switch kind {
	case KindPharmacy:
		var r pharmacyLogin
		if err := json.Unmarshal(body, &r); err != nil {
			return LoginResponse{}, fmt.Errorf("decode pharmacy login: %w", err)
		}
		token, account = r.Token, r.Pharmacy
	case KindHospital:
		var r hospitalLogin
		if err := json.Unmarshal(body, &r); err != nil {
			return LoginResponse{}, fmt.Errorf("decode hospital login: %w", err)
		}
		token, account = r.Token, r.Hospital
	case KindBranch:
		var r branchLogin
		if err := json.Unmarshal(body, &r); err != nil {
			return LoginResponse{}, fmt.Errorf("decode branch login: %w", err)
		}
		token, account = r.Token, r.Branch
	case KindDoctor:
		var r doctorLogin
		if err := json.Unmarshal(body, &r); err != nil {
			return LoginResponse{}, fmt.Errorf("decode doctor login: %w", err)
		}
		token, account = r.Token, &r.Account
	default:
		return LoginResponse{}, fmt.Errorf("unknown account kind %q", kind)
	}

	if token == "" {
		return LoginResponse{}, ErrMissingToken
	}
	if account == nil || account.ID == 0 {
		return LoginResponse{}, fmt.Errorf("%s login response has no account", kind)
	}

	return LoginResponse{Kind: kind, Token: token, Account: *account}, nil
}
