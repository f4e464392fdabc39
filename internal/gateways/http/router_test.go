package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "sub_expenses/internal/config"
	"sub_expenses/internal/entity"
	"sub_expenses/internal/usecase"
)

const (
	knownUser   = "60601fee-2bf1-4721-ae6f-7636e79a0cba"
	unknownUser = "00000000-0000-0000-0000-000000000000"
)

var router = gin.New()

type stubSubRepo struct{}

func storedSub() *entity.Subscription {
	return &entity.Subscription{
		ID:              1,
		UserID:          strfmt.UUID(knownUser),
		ServiceName:     "Netflix",
		Price:           decimal.RequireFromString("9500"),
		BillingCycle:    entity.CycleMonthly,
		BillingDate:     time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		NextBillingDate: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (stubSubRepo) SaveSub(_ context.Context, s *entity.Subscription) (*entity.Subscription, error) {
	s.ID = 1
	return s, nil
}

func (stubSubRepo) UpdateSub(_ context.Context, s *entity.Subscription) error {
	if s.ID != 1 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (stubSubRepo) DeleteSub(_ context.Context, id int64) error {
	if id != 1 {
		return usecase.ErrSubscriptionNotFound
	}
	return nil
}

func (stubSubRepo) GetSubByID(_ context.Context, id int64) (*entity.Subscription, error) {
	if id != 1 {
		return nil, usecase.ErrSubscriptionNotFound
	}
	return storedSub(), nil
}

func (stubSubRepo) ListSubsByUser(_ context.Context, userID strfmt.UUID) ([]*entity.Subscription, error) {
	if userID.String() != knownUser {
		return nil, nil
	}
	return []*entity.Subscription{storedSub()}, nil
}

func (stubSubRepo) ListSubsDue(_ context.Context, f usecase.DueFilter) ([]*entity.Subscription, error) {
	if f.UserID.String() != knownUser {
		return nil, nil
	}
	return []*entity.Subscription{storedSub()}, nil
}

type stubUserRepo struct{}

func (stubUserRepo) UserExists(_ context.Context, id strfmt.UUID) (bool, error) {
	return id.String() == knownUser, nil
}

func init() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	router = SetupGin(cfg.Config{Env: "local"}, UseCases{
		Sub: usecase.NewSubscription(stubSubRepo{}, stubUserRepo{}, time.UTC),
	}, log)
}

func doJSON(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		r.Header.Add("Content-Type", "application/json")
	}
	r.Header.Add("Accept", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestUnknownRoute(t *testing.T) {
	for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(m, func(t *testing.T) {
			w := doJSON(t, m, "/unknown", "")
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestCreateSubscription(t *testing.T) {
	t.Run("valid_request_201", func(t *testing.T) {
		body := `{
			"user_id": "` + knownUser + `",
			"service_name": "Yandex Plus",
			"price": 400,
			"billing_cycle": "MONTHLY",
			"billing_date": "2025-07-15"
		}`
		w := doJSON(t, http.MethodPost, "/subscriptions", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			ID              int64  `json:"id"`
			NextBillingDate string `json:"next_billing_date"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2025-08-15", resp.NextBillingDate)
	})

	t.Run("month_end_clamped", func(t *testing.T) {
		body := `{
			"user_id": "` + knownUser + `",
			"service_name": "Gym",
			"price": 30000,
			"billing_cycle": "MONTHLY",
			"billing_date": "2025-01-31"
		}`
		w := doJSON(t, http.MethodPost, "/subscriptions", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			NextBillingDate string `json:"next_billing_date"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2025-02-28", resp.NextBillingDate)
	})

	t.Run("request_body_has_syntax_error_400", func(t *testing.T) {
		w := doJSON(t, http.MethodPost, "/subscriptions", "{ bad json }")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("request_body_has_unsupported_format_415", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewBufferString("<xml></xml>"))
		r.Header.Add("Content-Type", "application/xml")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("invalid_data_422", func(t *testing.T) {
		body := `{
			"user_id": "` + knownUser + `",
			"service_name": "",
			"price": 0,
			"billing_cycle": "WEEKLY",
			"billing_date": "2025-07-15"
		}`
		w := doJSON(t, http.MethodPost, "/subscriptions", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown_owner_404", func(t *testing.T) {
		body := `{
			"user_id": "` + unknownUser + `",
			"service_name": "Netflix",
			"price": 400,
			"billing_cycle": "MONTHLY",
			"billing_date": "2025-07-15"
		}`
		w := doJSON(t, http.MethodPost, "/subscriptions", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requested_unsupported_body_format_406", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/subscriptions?user_id="+knownUser, nil)
		r.Header.Add("Accept", "application/xml")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		assert.Equal(t, http.StatusNotAcceptable, w.Code)
	})
}

func TestListSubscriptions(t *testing.T) {
	t.Run("success_200", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions?user_id="+knownUser, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, json.Valid(w.Body.Bytes()))
	})

	t.Run("empty_owner_gets_empty_array", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions?user_id="+unknownUser, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("invalid_uuid_422", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions?user_id=not-a-uuid", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetSubscriptionByID(t *testing.T) {
	t.Run("success_200", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions/1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			ID          int64  `json:"id"`
			ServiceName string `json:"service_name"`
			BillingDate string `json:"billing_date"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Netflix", resp.ServiceName)
		assert.Equal(t, "2025-07-15", resp.BillingDate)
	})

	t.Run("not_found_404", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid_id_422", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions/abc", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestUpdateSubscription(t *testing.T) {
	t.Run("success_200", func(t *testing.T) {
		body := `{
			"user_id": "` + knownUser + `",
			"service_name": "Netflix Premium",
			"price": 17.99,
			"billing_cycle": "YEARLY",
			"billing_date": "2025-07-15"
		}`
		w := doJSON(t, http.MethodPut, "/subscriptions/1", body)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("not_found_404", func(t *testing.T) {
		body := `{
			"user_id": "` + knownUser + `",
			"service_name": "Netflix",
			"price": 400,
			"billing_cycle": "MONTHLY",
			"billing_date": "2025-07-15"
		}`
		w := doJSON(t, http.MethodPut, "/subscriptions/999", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteSubscription(t *testing.T) {
	t.Run("success_204", func(t *testing.T) {
		w := doJSON(t, http.MethodDelete, "/subscriptions/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("not_found_404", func(t *testing.T) {
		w := doJSON(t, http.MethodDelete, "/subscriptions/999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpcomingSubscriptions(t *testing.T) {
	t.Run("success_200", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions/upcoming?user_id="+knownUser, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, json.Valid(w.Body.Bytes()))
	})

	t.Run("invalid_horizon_422", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions/upcoming?user_id="+knownUser+"&horizon_days=-2", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestMonthlyExpense(t *testing.T) {
	t.Run("success_200", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions/monthly-expense?user_id="+knownUser, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			UserID string          `json:"user_id"`
			Total  json.RawMessage `json:"total_monthly_expense"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, knownUser, resp.UserID)
		assert.Equal(t, "9500", strings.Trim(string(resp.Total), `"`))
	})

	t.Run("empty_owner_total_zero", func(t *testing.T) {
		w := doJSON(t, http.MethodGet, "/subscriptions/monthly-expense?user_id="+unknownUser, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Total json.RawMessage `json:"total_monthly_expense"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "0", strings.Trim(string(resp.Total), `"`))
	})
}

func TestOptionsSubscriptions(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/subscriptions", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	allowed := strings.Split(w.Header().Get("Allow"), ",")
	assert.Contains(t, allowed, http.MethodOptions)
	assert.Contains(t, allowed, http.MethodGet)
	assert.Contains(t, allowed, http.MethodPost)
}
