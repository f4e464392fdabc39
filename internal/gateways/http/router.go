package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"sub_expenses/internal/entity/dto"
	"sub_expenses/internal/usecase"
)

func setupRouter(r *gin.Engine, u UseCases) {
	r.HandleMethodNotAllowed = true

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	setupSubscriptions(r, u)
	setupSubscriptionsID(r, u)
	setupSubscriptionQueries(r, u)
}

func setupSubscriptions(r *gin.Engine, u UseCases) {
	r.POST("/subscriptions", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		input, ok := bindInput(c)
		if !ok {
			return
		}

		created, err := u.Sub.RegisterSub(c, input.ToEntity())
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.FromEntity(created))
	})

	r.GET("/subscriptions", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		subs, err := u.Sub.ListSubsByUser(c, userID)
		if err != nil {
			renderError(c, err)
			return
		}
		resp := make([]*dto.Subscription, 0, len(subs))
		for _, s := range subs {
			resp = append(resp, dto.FromEntity(s))
		}
		c.JSON(http.StatusOK, resp)
	})

	r.OPTIONS("/subscriptions", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "POST,OPTIONS,GET")
		c.Status(http.StatusNoContent)
	})
}

func setupSubscriptionsID(r *gin.Engine, u UseCases) {
	r.GET("/subscriptions/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}

		sub, err := u.Sub.GetSubByID(c, id)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromEntity(sub))
	})

	r.PUT("/subscriptions/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, ok := pathID(c)
		if !ok {
			return
		}
		input, ok := bindInput(c)
		if !ok {
			return
		}

		sub := input.ToEntity()
		sub.ID = id
		updated, err := u.Sub.UpdateSub(c, sub)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromEntity(updated))
	})

	r.DELETE("/subscriptions/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if _, err := u.Sub.DeleteSub(c, id); err != nil {
			renderError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.OPTIONS("/subscriptions/:id", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "PUT,OPTIONS,GET,DELETE")
		c.Status(http.StatusNoContent)
	})
}

func setupSubscriptionQueries(r *gin.Engine, u UseCases) {
	r.GET("/subscriptions/upcoming", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		horizon := 0
		if hs := c.Query("horizon_days"); hs != "" {
			h, err := strconv.Atoi(hs)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid horizon_days"})
				return
			}
			horizon = h
		}

		subs, err := u.Sub.Upcoming(c, userID, horizon)
		if err != nil {
			renderError(c, err)
			return
		}
		resp := make([]*dto.Subscription, 0, len(subs))
		for _, s := range subs {
			resp = append(resp, dto.FromEntity(s))
		}
		c.JSON(http.StatusOK, resp)
	})

	r.GET("/subscriptions/monthly-expense", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		total, err := u.Sub.TotalMonthlyExpense(c, userID)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.MonthlyExpense{
			UserID:              total.UserID,
			TotalMonthlyExpense: total.Total,
		})
	})

	for _, p := range []string{"/subscriptions/upcoming", "/subscriptions/monthly-expense"} {
		r.OPTIONS(p, func(c *gin.Context) {
			c.Writer.Header().Set("Allow", "GET,OPTIONS")
			c.Status(http.StatusNoContent)
		})
	}
}

// bindInput decodes and validates a subscription request body. A syntax
// error is a 400, a semantic one a 422.
func bindInput(c *gin.Context) (*dto.SubscriptionInput, bool) {
	if ct := c.ContentType(); ct != "" && ct != "application/json" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
		return nil, false
	}

	var input dto.SubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if err := input.Validate(strfmt.Default); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil, false
	}
	return &input, true
}

func requireUserID(c *gin.Context) (strfmt.UUID, bool) {
	raw := strings.TrimSpace(c.Query("user_id"))
	uid, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid user_id"})
		return "", false
	}
	return strfmt.UUID(uid.String()), true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, usecase.ErrInvalidID):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
	case errors.Is(err, usecase.ErrInvalidCycle):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid billing cycle"})
	case errors.Is(err, usecase.ErrInvalidSubscription):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid subscription data"})
	case errors.Is(err, usecase.ErrInvalidHorizon):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid horizon"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func acceptsJSON(h string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	for _, p := range strings.Split(h, ",") {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == "application/json" || mt == "*/*" {
			return true
		}
	}
	return false
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	c.JSON(http.StatusNotAcceptable, gin.H{"error": "Accept application/json only"})
	return false
}
