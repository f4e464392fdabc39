package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-openapi/strfmt"

	"sub_expenses/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase sub_expenses/internal/usecase SubscriptionRepository,UserRepository

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidSubscription  = errors.New("invalid subscription")
	ErrInvalidCycle         = errors.New("invalid billing cycle")
	ErrInvalidID            = errors.New("invalid id")
	ErrInvalidHorizon       = errors.New("invalid horizon")
)

const (
	// DefaultHorizonDays is the lookahead window used when the caller
	// does not supply one; the scanner uses the same value.
	DefaultHorizonDays = 3

	maxHorizonDays    = 365
	maxServiceNameLen = 100
	maxPriceIntDigits = 8
)

// DateRange - inclusive window over next billing dates
type DateRange struct {
	// From - lower bound (inclusive)
	From time.Time
	// To - upper bound (inclusive)
	To time.Time
}

// DueFilter - selects subscriptions by next billing date, optionally
// scoped to a single user
type DueFilter struct {
	// UserID - owner to filter by; empty means all owners
	UserID strfmt.UUID
	// Range - inclusive next-billing-date window
	Range DateRange
}

// SubscriptionRepository - persistence contract for subscriptions.
// A successful write must be visible to an immediately following read.
type SubscriptionRepository interface {
	// SaveSub - insert a subscription and return it with its assigned ID
	SaveSub(ctx context.Context, s *entity.Subscription) (*entity.Subscription, error)
	// UpdateSub - replace a stored subscription in place
	UpdateSub(ctx context.Context, s *entity.Subscription) error
	// DeleteSub - remove a subscription by ID
	DeleteSub(ctx context.Context, id int64) error
	// GetSubByID - fetch a subscription by ID
	GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error)
	// ListSubsByUser - all subscriptions of one user, id ascending
	ListSubsByUser(ctx context.Context, userID strfmt.UUID) ([]*entity.Subscription, error)
	// ListSubsDue - subscriptions whose next billing date falls inside
	// the filter range, both bounds inclusive
	ListSubsDue(ctx context.Context, f DueFilter) ([]*entity.Subscription, error)
}

// UserRepository - owner lookups needed by the subscription service
type UserRepository interface {
	// UserExists - reports whether the user id is registered
	UserExists(ctx context.Context, id strfmt.UUID) (bool, error)
}
