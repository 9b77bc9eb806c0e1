package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type BillboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

func NewBillboardResource(repo repository.BillboardRepository, guard *application.OwnershipGuard, logger *logrus.Logger) *Resource[BillboardRequest] {
	return &Resource[BillboardRequest]{
		Name:   "billboards",
		Logger: logger,
		Guard:  guard,
		Rules: func(req *BillboardRequest) []Rule {
			return []Rule{
				{"Label is required", func() bool { return req.Label != "" }},
				{"Image URL is required", func() bool { return req.ImageURL != "" }},
			}
		},
		Create: func(ctx context.Context, storeID string, req *BillboardRequest) (any, error) {
			b := &entity.Billboard{
				StoreID:  storeID,
				Label:    req.Label,
				ImageURL: req.ImageURL,
			}
			if err := repo.Create(ctx, b); err != nil {
				return nil, err
			}
			return b, nil
		},
		List: func(c *gin.Context, storeID string) (any, error) {
			return repo.ListByStore(c.Request.Context(), storeID)
		},
	}
}
