package app

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"hbnb_web/internal/domain"
)

// Login messages.
const (
	msgMissingFields  = "Please complete all fields."
	msgBadEmail       = "Please enter a valid email address."
	msgBadCredentials = "Incorrect email or password."
	msgServerNoToken  = "Server error: Missing token."
	msgNetworkError   = "Network error. Please try again."
)

type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginFlow validates the form superficially and exchanges credentials for a
// bearer token. Real authentication is the backend's job.
type LoginFlow struct {
	api      domain.APIClient
	validate *validator.Validate
	log      zerolog.Logger
}

func NewLoginFlow(api domain.APIClient, log zerolog.Logger) *LoginFlow {
	return &LoginFlow{api: api, validate: validator.New(), log: log}
}

// Login returns the token and "" on success, or "" and a user-facing message
// on any failure. Validation failures issue no network call. A success
// status with no token field surfaces at the same severity as a credential
// failure; that matches the site's historical behavior and is intentional.
func (f *LoginFlow) Login(ctx context.Context, creds Credentials) (string, string) {
	if err := f.validate.Struct(creds); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) && len(verr) > 0 && verr[0].Tag() == "email" {
			return "", msgBadEmail
		}
		return "", msgMissingFields
	}

	tok, err := f.api.Login(ctx, creds.Email, creds.Password)
	switch {
	case err == nil:
		return tok, ""
	case errors.Is(err, domain.ErrMissingToken):
		f.log.Error().Msg("login response carried no access_token")
		return "", msgServerNoToken
	default:
		if msg := domain.Message(err); msg != "" {
			return "", msg
		}
		var se *domain.StatusError
		if errors.As(err, &se) {
			return "", msgBadCredentials
		}
		f.log.Warn().Err(err).Msg("login transport failure")
		return "", msgNetworkError
	}
}
