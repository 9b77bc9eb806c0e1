package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/infrastructure/search"
	"github.com/oksasatya/store-admin-api/pkg/response"
)

// SearchHandler exposes product name search backed by the Elasticsearch
// mirror. Read-only and public, like the list endpoints.
type SearchHandler struct {
	Index  *search.ProductsIndex
	Logger *logrus.Logger
}

func NewSearchHandler(idx *search.ProductsIndex, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{Index: idx, Logger: logger}
}

func (h *SearchHandler) Products(c *gin.Context) {
	storeID := c.Param("storeId")
	if storeID == "" {
		response.PlainError(c, http.StatusUnprocessableEntity, "Store ID is required")
		return
	}
	q := c.Query("q")
	if q == "" {
		response.PlainError(c, http.StatusUnprocessableEntity, "Query is required")
		return
	}

	hits, err := h.Index.SearchByName(c.Request.Context(), storeID, q)
	if err != nil {
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"handler":    "products_search",
			"request_id": c.GetString("request_id"),
		}).Error("unhandled error")
		response.InternalError(c)
		return
	}
	response.JSON(c, hits)
}
