// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SignUpInput defines the data required to register a new account.
// Artist is populated only for artist signups.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Artist   *ArtistSignUpInput
}

// ArtistSignUpInput carries the artist profile fields collected at signup.
type ArtistSignUpInput struct {
	AvatarURL  string
	Specialty  string
	Location   string
	ArtistType entity.ArtistType
	WhatsApp   string
	KakaoTalk  string
}

// SaveProfileInput defines the editable profile fields. Artist-only fields
// are ignored for general accounts.
type SaveProfileInput struct {
	Name          string
	AvatarURL     string
	CoverImageURL string
	Bio           string
	Specialty     string
	Location      string
	WhatsApp      string
	KakaoTalk     string
}

// --- Output DTOs ---

// LoginOutput returns the session token and state after a successful login.
type LoginOutput struct {
	Token   string
	Session *entity.Session
	Account *entity.Account
}

// SignUpOutput returns the created account. Login is nil when the signup
// does not log the account in, which is the case for artists awaiting
// approval; Message then carries the notice to surface.
type SignUpOutput struct {
	Account *entity.Account
	Login   *LoginOutput
	Message string
}

// SaveProfileOutput returns the updated account and, for artists, the
// updated artist profile.
type SaveProfileOutput struct {
	Account *entity.Account
	Artist  *entity.Artist
}

// AccountUsecase defines the interface for authentication and profile
// operations. This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	SaveProfile(ctx context.Context, sessionID uuid.UUID, input SaveProfileInput) (*SaveProfileOutput, error)
}
