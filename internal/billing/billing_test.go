package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sub_expenses/internal/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDate(t *testing.T) {
	tests := []struct {
		name  string
		from  time.Time
		cycle entity.BillingCycle
		want  time.Time
	}{
		{"monthly", date(2024, 12, 15), entity.CycleMonthly, date(2025, 1, 15)},
		{"quarterly", date(2024, 12, 15), entity.CycleQuarterly, date(2025, 3, 15)},
		{"yearly", date(2024, 12, 15), entity.CycleYearly, date(2025, 12, 15)},
		{"monthly_month_end_leap", date(2024, 1, 31), entity.CycleMonthly, date(2024, 2, 29)},
		{"monthly_month_end_non_leap", date(2025, 1, 31), entity.CycleMonthly, date(2025, 2, 28)},
		{"quarterly_month_end", date(2024, 11, 30), entity.CycleQuarterly, date(2025, 2, 28)},
		{"yearly_leap_day", date(2024, 2, 29), entity.CycleYearly, date(2025, 2, 28)},
		{"monthly_31_to_30", date(2025, 3, 31), entity.CycleMonthly, date(2025, 4, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDate(tt.from, tt.cycle)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// same inputs, same output
			again, err := NextDate(tt.from, tt.cycle)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}

	t.Run("unknown cycle", func(t *testing.T) {
		_, err := NextDate(date(2025, 1, 1), entity.BillingCycle("WEEKLY"))
		assert.ErrorIs(t, err, ErrUnknownCycle)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := NextDate(time.Time{}, entity.CycleMonthly)
		assert.ErrorIs(t, err, ErrZeroDate)
	})
}

func TestMonthlyEquivalent(t *testing.T) {
	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name  string
		price string
		cycle entity.BillingCycle
		want  string
	}{
		{"monthly unchanged", "9500", entity.CycleMonthly, "9500"},
		{"yearly divided by 12", "300000", entity.CycleYearly, "25000"},
		{"quarterly divided by 3", "15000", entity.CycleQuarterly, "5000"},
		{"quarterly repeating", "100", entity.CycleQuarterly, "33.33"},
		{"yearly half rounds up", "1.50", entity.CycleYearly, "0.13"},
		{"yearly small", "99.99", entity.CycleYearly, "8.33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyEquivalent(dec(tt.price), tt.cycle)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	t.Run("unknown cycle", func(t *testing.T) {
		_, err := MonthlyEquivalent(dec("10"), entity.BillingCycle(""))
		assert.ErrorIs(t, err, ErrUnknownCycle)
	})
}
