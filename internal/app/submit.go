package app

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"hbnb_web/internal/domain"
)

// SubmitState tracks the review gate. A submit walks
// Idle -> Validating -> Submitting and lands on Succeeded or Failed; guard
// failures fall back to Idle without any network call. Whichever terminal
// state is reached, the controller re-enables the form.
type SubmitState int

const (
	StateIdle SubmitState = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

type ReviewInput struct {
	PlaceID string `validate:"required"`
	Comment string `validate:"required"`
	Rating  int    `validate:"gte=1,lte=5"`
}

type SubmitResult struct {
	State   SubmitState
	Message string
}

// Gate messages.
const (
	msgLoginRequired  = "You must be logged in to submit a review."
	msgMissingPlaceID = "Place ID is missing."
	msgEmptyComment   = "Please enter your review before submitting."
	msgBadRating      = "Please select a valid rating."
	msgSubmitFailed   = "Failed to submit review."
	msgSubmitOK       = "Review submitted successfully!"
)

// ReviewGate guards and performs review submission.
type ReviewGate struct {
	api      domain.APIClient
	validate *validator.Validate
	log      zerolog.Logger
}

func NewReviewGate(api domain.APIClient, log zerolog.Logger) *ReviewGate {
	return &ReviewGate{api: api, validate: validator.New(), log: log}
}

// Submit runs the guards and, only when every one passes, posts the review.
func (g *ReviewGate) Submit(ctx context.Context, token string, in ReviewInput) SubmitResult {
	// Validating. The token check comes first: without one the backend
	// would reject the call anyway, so it is never issued.
	if token == "" {
		return SubmitResult{State: StateFailed, Message: msgLoginRequired}
	}
	in.Comment = strings.TrimSpace(in.Comment)
	if err := g.validate.Struct(in); err != nil {
		return SubmitResult{State: StateIdle, Message: guardMessage(err)}
	}

	// Submitting.
	if err := g.api.PostReview(ctx, token, in.PlaceID, in.Comment, in.Rating); err != nil {
		g.log.Warn().Str("place_id", in.PlaceID).Err(err).Msg("review submit failed")
		msg := domain.Message(err)
		if msg == "" {
			msg = msgSubmitFailed
		}
		return SubmitResult{State: StateFailed, Message: msg}
	}
	return SubmitResult{State: StateSucceeded, Message: msgSubmitOK}
}

func guardMessage(err error) string {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 {
		switch verr[0].Field() {
		case "PlaceID":
			return msgMissingPlaceID
		case "Comment":
			return msgEmptyComment
		}
	}
	return msgBadRating
}
