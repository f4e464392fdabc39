package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"sub_expenses/internal/entity"
	"sub_expenses/internal/usecase"
)

// SubRepository persists subscriptions in postgres.
type SubRepository struct {
	pool *pgxpool.Pool
}

func NewSubRepository(pool *pgxpool.Pool) *SubRepository {
	return &SubRepository{pool: pool}
}

// price is stored as NUMERIC(10,2) and moved over the wire as text to keep
// it exact on both sides.
const subColumns = `id, user_id, service_name, price::text, billing_cycle, billing_date, next_billing_date`

func (r *SubRepository) SaveSub(ctx context.Context, sub *entity.Subscription) (*entity.Subscription, error) {
	if sub == nil {
		return nil, fmt.Errorf("save sub: %w", usecase.ErrInvalidSubscription)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO subscriptions (user_id, service_name, price, billing_cycle, billing_date, next_billing_date)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)
		RETURNING `+subColumns,
		sub.UserID.String(),
		sub.ServiceName,
		sub.Price.String(),
		string(sub.BillingCycle),
		sub.BillingDate,
		sub.NextBillingDate,
	)
	out, err := scanSub(row)
	if err != nil {
		return nil, fmt.Errorf("save sub: %w", err)
	}
	return out, nil
}

func (r *SubRepository) UpdateSub(ctx context.Context, sub *entity.Subscription) error {
	if sub == nil {
		return fmt.Errorf("update sub: %w", usecase.ErrInvalidSubscription)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE subscriptions
		SET user_id = $2,
		    service_name = $3,
		    price = $4::numeric,
		    billing_cycle = $5,
		    billing_date = $6,
		    next_billing_date = $7
		WHERE id = $1`,
		sub.ID,
		sub.UserID.String(),
		sub.ServiceName,
		sub.Price.String(),
		string(sub.BillingCycle),
		sub.BillingDate,
		sub.NextBillingDate,
	)
	if err != nil {
		return fmt.Errorf("update sub: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) DeleteSub(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sub: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubRepository) GetSubByID(ctx context.Context, id int64) (*entity.Subscription, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+subColumns+`
		FROM subscriptions
		WHERE id = $1`, id)

	sub, err := scanSub(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get sub by id=%d: %w", id, err)
	}
	return sub, nil
}

func (r *SubRepository) ListSubsByUser(ctx context.Context, userID strfmt.UUID) ([]*entity.Subscription, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+subColumns+`
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY id`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list subs by user: %w", err)
	}
	defer rows.Close()
	return collectSubs(rows)
}

func (r *SubRepository) ListSubsDue(ctx context.Context, f usecase.DueFilter) ([]*entity.Subscription, error) {
	query := `
		SELECT ` + subColumns + `
		FROM subscriptions
		WHERE next_billing_date BETWEEN $1 AND $2`
	args := []any{f.Range.From, f.Range.To}

	if f.UserID.String() != "" {
		query += ` AND user_id = $3`
		args = append(args, f.UserID.String())
	}
	query += ` ORDER BY next_billing_date, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subs due: %w", err)
	}
	defer rows.Close()
	return collectSubs(rows)
}

func collectSubs(rows pgx.Rows) ([]*entity.Subscription, error) {
	out := make([]*entity.Subscription, 0)
	for rows.Next() {
		sub, err := scanSub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subs: %w", err)
	}
	return out, nil
}

func scanSub(row pgx.Row) (*entity.Subscription, error) {
	var (
		sub      entity.Subscription
		userID   string
		price    string
		cycle    string
		billDate time.Time
		nextDate time.Time
	)
	if err := row.Scan(&sub.ID, &userID, &sub.ServiceName, &price, &cycle, &billDate, &nextDate); err != nil {
		return nil, err
	}

	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", price, err)
	}

	sub.UserID = strfmt.UUID(userID)
	sub.Price = p
	sub.BillingCycle = entity.BillingCycle(cycle)
	sub.BillingDate = asDate(billDate)
	sub.NextBillingDate = asDate(nextDate)
	return &sub, nil
}

// asDate normalizes a DATE column value to UTC midnight.
func asDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
