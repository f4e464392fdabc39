package entity

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
)

// BillingCycle - closed set of payment recurrences
type BillingCycle string

const (
	CycleMonthly   BillingCycle = "MONTHLY"
	CycleQuarterly BillingCycle = "QUARTERLY"
	CycleYearly    BillingCycle = "YEARLY"
)

// Valid reports whether c is one of the known cycles
func (c BillingCycle) Valid() bool {
	switch c {
	case CycleMonthly, CycleQuarterly, CycleYearly:
		return true
	}
	return false
}

// Subscription - one registered recurring payment
type Subscription struct {
	// ID - subscription identifier, assigned by the store on insert
	ID int64
	// UserID - identifier of the owning user in UUID format
	UserID strfmt.UUID
	// ServiceName - name of the subscribed service
	ServiceName string
	// Price - payment amount per billing cycle, two fractional digits max
	Price decimal.Decimal
	// BillingCycle - payment recurrence
	BillingCycle BillingCycle
	// BillingDate - reference payment date, calendar date at UTC midnight
	BillingDate time.Time
	// NextBillingDate - BillingDate advanced by one cycle; derived, never
	// taken from client input
	NextBillingDate time.Time
}
