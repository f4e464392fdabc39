package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"

	"sub_expenses/internal/billing"
	"sub_expenses/internal/entity"
)

// MonthlyExpense - sum of a user's subscriptions on a monthly basis
type MonthlyExpense struct {
	// UserID - owner the total belongs to
	UserID strfmt.UUID
	// Total - exact-decimal sum of monthly equivalents, two fractional digits
	Total decimal.Decimal
}

// Subscription coordinates subscription use cases via the repositories.
// It is the only writer of NextBillingDate: every create and update
// recomputes it from the billing date and cycle, regardless of input.
type Subscription struct {
	Sr SubscriptionRepository
	Ur UserRepository

	// loc fixes what "today" means for the upcoming queries. Configured
	// explicitly rather than trusting the host zone.
	loc *time.Location
	now func() time.Time
}

// NewSubscription creates a use case service with the given repositories.
// A nil location falls back to UTC.
func NewSubscription(sr SubscriptionRepository, ur UserRepository, loc *time.Location) *Subscription {
	if loc == nil {
		loc = time.UTC
	}
	return &Subscription{
		Sr:  sr,
		Ur:  ur,
		loc: loc,
		now: time.Now,
	}
}

// RegisterSub validates a new subscription, derives its next billing date
// and saves it, returning the stored record with its assigned ID.
func (s *Subscription) RegisterSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if err := s.validateAndNormalize(sub); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, sub.UserID); err != nil {
		return nil, err
	}
	created, err := s.Sr.SaveSub(ctx, sub)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateSub replaces the editable fields of an existing subscription by ID,
// recomputes the next billing date and returns the fresh copy.
func (s *Subscription) UpdateSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil || sub.ID <= 0 {
		return nil, ErrInvalidID
	}
	if err := s.validateAndNormalize(sub); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, sub.UserID); err != nil {
		return nil, err
	}
	if err := s.Sr.UpdateSub(ctx, sub); err != nil {
		return nil, err
	}
	return s.Sr.GetSubByID(ctx, sub.ID)
}

// DeleteSub removes a subscription by ID and returns the previously stored record.
func (s *Subscription) DeleteSub(ctx context.Context, id int64) (*entity.Subscription, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	existing, err := s.Sr.GetSubByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Sr.DeleteSub(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetSubByID fetches a subscription by its ID.
func (s *Subscription) GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.Sr.GetSubByID(ctx, id)
}

// ListSubsByUser returns all subscriptions of one user, id ascending.
// An unknown user yields an empty list, not an error.
func (s *Subscription) ListSubsByUser(ctx context.Context, userID strfmt.UUID) ([]*entity.Subscription, error) {
	if userID.String() == "" {
		return nil, fmt.Errorf("%w: empty user_id", ErrInvalidSubscription)
	}
	return s.Sr.ListSubsByUser(ctx, userID)
}

// Upcoming returns the user's subscriptions whose next billing date falls in
// [today, today+horizonDays], both bounds inclusive. A zero horizon means
// the default of 3 days. Already-overdue subscriptions are not included.
func (s *Subscription) Upcoming(ctx context.Context, userID strfmt.UUID, horizonDays int) ([]*entity.Subscription, error) {
	if userID.String() == "" {
		return nil, fmt.Errorf("%w: empty user_id", ErrInvalidSubscription)
	}
	r, err := s.horizonRange(horizonDays)
	if err != nil {
		return nil, err
	}
	return s.Sr.ListSubsDue(ctx, DueFilter{UserID: userID, Range: r})
}

// DueWithin returns subscriptions across all owners due in
// [today, today+horizonDays]. Used by the billing scanner.
func (s *Subscription) DueWithin(ctx context.Context, horizonDays int) ([]*entity.Subscription, error) {
	r, err := s.horizonRange(horizonDays)
	if err != nil {
		return nil, err
	}
	return s.Sr.ListSubsDue(ctx, DueFilter{Range: r})
}

// TotalMonthlyExpense sums the monthly equivalent of every subscription the
// user owns. A user with no subscriptions gets a zero total.
func (s *Subscription) TotalMonthlyExpense(ctx context.Context, userID strfmt.UUID) (MonthlyExpense, error) {
	if userID.String() == "" {
		return MonthlyExpense{}, fmt.Errorf("%w: empty user_id", ErrInvalidSubscription)
	}
	subs, err := s.Sr.ListSubsByUser(ctx, userID)
	if err != nil {
		return MonthlyExpense{}, err
	}

	total := decimal.Zero
	for _, sub := range subs {
		monthly, err := billing.MonthlyEquivalent(sub.Price, sub.BillingCycle)
		if err != nil {
			return MonthlyExpense{}, fmt.Errorf("expense for sub id=%d: %w", sub.ID, err)
		}
		total = total.Add(monthly)
	}
	return MonthlyExpense{UserID: userID, Total: total}, nil
}

// Today returns the current calendar date in the configured time zone,
// represented as UTC midnight to match stored billing dates.
func (s *Subscription) Today() time.Time {
	t := s.now().In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Subscription) horizonRange(horizonDays int) (DateRange, error) {
	if horizonDays < 0 || horizonDays > maxHorizonDays {
		return DateRange{}, fmt.Errorf("%w: %d days", ErrInvalidHorizon, horizonDays)
	}
	if horizonDays == 0 {
		horizonDays = DefaultHorizonDays
	}
	today := s.Today()
	return DateRange{From: today, To: today.AddDate(0, 0, horizonDays)}, nil
}

func (s *Subscription) requireUser(ctx context.Context, userID strfmt.UUID) error {
	ok, err := s.Ur.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user %s: %w", userID, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return nil
}

// validateAndNormalize enforces the field rules, aligns the billing date to
// a pure calendar date and derives NextBillingDate. Any value the caller put
// into NextBillingDate is overwritten.
func (s *Subscription) validateAndNormalize(sub *entity.Subscription) error {
	if sub == nil {
		return fmt.Errorf("%w: nil", ErrInvalidSubscription)
	}
	sub.ServiceName = strings.TrimSpace(sub.ServiceName)
	if sub.ServiceName == "" {
		return fmt.Errorf("%w: empty service_name", ErrInvalidSubscription)
	}
	if utf8.RuneCountInString(sub.ServiceName) > maxServiceNameLen {
		return fmt.Errorf("%w: service_name longer than %d characters", ErrInvalidSubscription, maxServiceNameLen)
	}
	if sub.UserID.String() == "" {
		return fmt.Errorf("%w: empty user_id", ErrInvalidSubscription)
	}
	if !sub.Price.IsPositive() {
		return fmt.Errorf("%w: price must be > 0", ErrInvalidSubscription)
	}
	if !sub.Price.Equal(sub.Price.Round(2)) {
		return fmt.Errorf("%w: price has more than 2 fractional digits", ErrInvalidSubscription)
	}
	if len(sub.Price.Truncate(0).String()) > maxPriceIntDigits {
		return fmt.Errorf("%w: price has more than %d integer digits", ErrInvalidSubscription, maxPriceIntDigits)
	}
	if !sub.BillingCycle.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCycle, sub.BillingCycle)
	}
	if sub.BillingDate.IsZero() {
		return fmt.Errorf("%w: empty billing_date", ErrInvalidSubscription)
	}

	sub.BillingDate = dateOnly(sub.BillingDate)
	next, err := billing.NextDate(sub.BillingDate, sub.BillingCycle)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSubscription, err)
	}
	sub.NextBillingDate = next
	return nil
}

// dateOnly strips any time-of-day component, keeping the calendar date at UTC midnight.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
