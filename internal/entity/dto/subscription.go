// Package dto holds the wire models of the subscription API and their
// validation, in the shape go-swagger generates for request bodies.
package dto

import (
	"time"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github.com/shopspring/decimal"

	"sub_expenses/internal/entity"
)

func init() {
	// prices travel as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

const maxServiceNameLen = 100

var billingCycleEnum = []interface{}{"MONTHLY", "QUARTERLY", "YEARLY"}

// SubscriptionInput - request body for create and update
type SubscriptionInput struct {
	// user_id - owner of the subscription
	// Required: true
	// Format: uuid
	UserID *strfmt.UUID `json:"user_id"`

	// service_name - display name of the subscribed service
	// Required: true
	// Max Length: 100
	ServiceName *string `json:"service_name"`

	// price - amount per billing cycle, at most two fractional digits
	// Required: true
	Price *decimal.Decimal `json:"price"`

	// billing_cycle - one of MONTHLY, QUARTERLY, YEARLY
	// Required: true
	BillingCycle *string `json:"billing_cycle"`

	// billing_date - reference payment date, YYYY-MM-DD
	// Required: true
	// Format: date
	BillingDate *strfmt.Date `json:"billing_date"`
}

// Validate validates this subscription input
func (m *SubscriptionInput) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateUserID(formats); err != nil {
		res = append(res, err)
	}
	if err := m.validateServiceName(); err != nil {
		res = append(res, err)
	}
	if err := m.validatePrice(); err != nil {
		res = append(res, err)
	}
	if err := m.validateBillingCycle(); err != nil {
		res = append(res, err)
	}
	if err := m.validateBillingDate(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *SubscriptionInput) validateUserID(formats strfmt.Registry) error {
	if m.UserID == nil {
		return errors.Required("user_id", "body", m.UserID)
	}
	if err := validate.FormatOf("user_id", "body", "uuid", m.UserID.String(), formats); err != nil {
		return err
	}
	return nil
}

func (m *SubscriptionInput) validateServiceName() error {
	if m.ServiceName == nil {
		return errors.Required("service_name", "body", m.ServiceName)
	}
	if err := validate.RequiredString("service_name", "body", *m.ServiceName); err != nil {
		return err
	}
	if err := validate.MaxLength("service_name", "body", *m.ServiceName, maxServiceNameLen); err != nil {
		return err
	}
	return nil
}

func (m *SubscriptionInput) validatePrice() error {
	if m.Price == nil {
		return errors.Required("price", "body", m.Price)
	}
	if !m.Price.IsPositive() {
		return errors.New(errors.CompositeErrorCode, "price in body must be greater than 0")
	}
	if !m.Price.Equal(m.Price.Round(2)) {
		return errors.New(errors.CompositeErrorCode, "price in body must have at most 2 fractional digits")
	}
	return nil
}

func (m *SubscriptionInput) validateBillingCycle() error {
	if m.BillingCycle == nil {
		return errors.Required("billing_cycle", "body", m.BillingCycle)
	}
	if err := validate.EnumCase("billing_cycle", "body", *m.BillingCycle, billingCycleEnum, true); err != nil {
		return err
	}
	return nil
}

func (m *SubscriptionInput) validateBillingDate(formats strfmt.Registry) error {
	if m.BillingDate == nil {
		return errors.Required("billing_date", "body", m.BillingDate)
	}
	if err := validate.FormatOf("billing_date", "body", "date", m.BillingDate.String(), formats); err != nil {
		return err
	}
	return nil
}

// ToEntity maps the validated input onto a domain record. NextBillingDate is
// left zero; the use case derives it.
func (m *SubscriptionInput) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		UserID:       *m.UserID,
		ServiceName:  *m.ServiceName,
		Price:        *m.Price,
		BillingCycle: entity.BillingCycle(*m.BillingCycle),
		BillingDate:  time.Time(*m.BillingDate),
	}
}

// Subscription - response body for a stored subscription
type Subscription struct {
	// id - store-assigned identifier
	ID int64 `json:"id"`

	// user_id - owner of the subscription
	UserID strfmt.UUID `json:"user_id"`

	// service_name
	ServiceName string `json:"service_name"`

	// price - amount per billing cycle
	Price decimal.Decimal `json:"price"`

	// billing_cycle
	BillingCycle string `json:"billing_cycle"`

	// billing_date - YYYY-MM-DD
	BillingDate strfmt.Date `json:"billing_date"`

	// next_billing_date - derived, YYYY-MM-DD
	NextBillingDate strfmt.Date `json:"next_billing_date"`
}

// FromEntity maps a domain record onto the wire shape.
func FromEntity(s *entity.Subscription) *Subscription {
	return &Subscription{
		ID:              s.ID,
		UserID:          s.UserID,
		ServiceName:     s.ServiceName,
		Price:           s.Price,
		BillingCycle:    string(s.BillingCycle),
		BillingDate:     strfmt.Date(s.BillingDate),
		NextBillingDate: strfmt.Date(s.NextBillingDate),
	}
}

// MonthlyExpense - response body of the monthly-expense aggregation
type MonthlyExpense struct {
	// user_id - owner the total belongs to
	UserID strfmt.UUID `json:"user_id"`

	// total_monthly_expense - exact-decimal sum of monthly equivalents
	TotalMonthlyExpense decimal.Decimal `json:"total_monthly_expense"`
}
