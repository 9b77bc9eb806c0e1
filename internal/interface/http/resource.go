package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/interface/middleware"
	"github.com/oksasatya/store-admin-api/pkg/response"
)

// Rule is one ordered presence check on a decoded create body. The first
// rule that fails determines the 422 message; later violations are never
// reported.
type Rule struct {
	Message string
	OK      func() bool
}

// Resource is the generic create/list pipeline every catalog entity runs
// through: resolve subject, decode body, ordered field rules, store id,
// ownership guard, persist. The five entity handlers are instantiations of
// this one shape.
type Resource[T any] struct {
	Name   string
	Logger *logrus.Logger
	Guard  *application.OwnershipGuard
	Rules  func(req *T) []Rule
	Create func(ctx context.Context, storeID string, req *T) (any, error)
	List   func(c *gin.Context, storeID string) (any, error)
}

func (r *Resource[T]) CreateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetString(middleware.CtxUserIDKey)
		if subject == "" {
			response.PlainError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// A body that does not decode is an unanticipated failure, not a
		// validation error: it maps to the generic 500.
		var req T
		if err := c.ShouldBindJSON(&req); err != nil {
			r.fail(c, "create", err)
			return
		}

		for _, rule := range r.Rules(&req) {
			if !rule.OK() {
				response.PlainError(c, http.StatusUnprocessableEntity, rule.Message)
				return
			}
		}

		storeID := c.Param("storeId")
		if storeID == "" {
			response.PlainError(c, http.StatusUnprocessableEntity, "Store ID is required")
			return
		}

		if _, err := r.Guard.Authorize(c.Request.Context(), subject, storeID); err != nil {
			r.deny(c, "create", err)
			return
		}

		out, err := r.Create(c.Request.Context(), storeID, &req)
		if err != nil {
			r.fail(c, "create", err)
			return
		}
		response.JSON(c, out)
	}
}

func (r *Resource[T]) ListHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeId")
		if storeID == "" {
			response.PlainError(c, http.StatusUnprocessableEntity, "Store ID is required")
			return
		}
		out, err := r.List(c, storeID)
		if err != nil {
			r.fail(c, "list", err)
			return
		}
		response.JSON(c, out)
	}
}

// deny writes expected denials (401/403/422) without logging; anything else
// falls through to fail.
func (r *Resource[T]) deny(c *gin.Context, op string, err error) {
	if ae, ok := application.AsError(err); ok {
		response.PlainError(c, ae.Status, ae.Message)
		return
	}
	r.fail(c, op, err)
}

func (r *Resource[T]) fail(c *gin.Context, op string, err error) {
	r.Logger.WithError(err).WithFields(logrus.Fields{
		"handler":    r.Name,
		"op":         op,
		"request_id": c.GetString("request_id"),
	}).Error("unhandled error")
	response.InternalError(c)
}
