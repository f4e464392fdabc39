// Package billing holds the pure billing-date and expense computations.
// Nothing here touches shared state; everything is safe to call concurrently.
package billing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"sub_expenses/internal/entity"
)

var (
	ErrUnknownCycle = errors.New("unknown billing cycle")
	ErrZeroDate     = errors.New("zero billing date")
)

var (
	three  = decimal.NewFromInt(3)
	twelve = decimal.NewFromInt(12)
)

// NextDate returns d advanced by exactly one billing cycle.
// Month arithmetic clamps to the last valid day of the target month,
// so Jan 31 + 1 month is Feb 28 (Feb 29 in leap years), never Mar 2.
func NextDate(d time.Time, c entity.BillingCycle) (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, ErrZeroDate
	}
	switch c {
	case entity.CycleMonthly:
		return addMonths(d, 1), nil
	case entity.CycleQuarterly:
		return addMonths(d, 3), nil
	case entity.CycleYearly:
		return addMonths(d, 12), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownCycle, c)
}

// MonthlyEquivalent converts a per-cycle price to its monthly basis.
// Divisions round half away from zero to two fractional digits, the
// HALF_UP behaviour expected for positive money amounts.
func MonthlyEquivalent(price decimal.Decimal, c entity.BillingCycle) (decimal.Decimal, error) {
	switch c {
	case entity.CycleMonthly:
		return price, nil
	case entity.CycleQuarterly:
		return price.DivRound(three, 2), nil
	case entity.CycleYearly:
		return price.DivRound(twelve, 2), nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownCycle, c)
}

// addMonths adds n calendar months to d, clamping the day of month.
// time.AddDate overflows Jan 31 + 1 month into March, which is wrong
// for billing dates.
func addMonths(d time.Time, n int) time.Time {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
