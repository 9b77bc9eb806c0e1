package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type CategoryRequest struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId"`
}

func NewCategoryResource(repo repository.CategoryRepository, guard *application.OwnershipGuard, logger *logrus.Logger) *Resource[CategoryRequest] {
	return &Resource[CategoryRequest]{
		Name:   "categories",
		Logger: logger,
		Guard:  guard,
		Rules: func(req *CategoryRequest) []Rule {
			return []Rule{
				{"Name is required", func() bool { return req.Name != "" }},
				{"Billboard ID is required", func() bool { return req.BillboardID != "" }},
			}
		},
		Create: func(ctx context.Context, storeID string, req *CategoryRequest) (any, error) {
			cat := &entity.Category{
				StoreID:     storeID,
				BillboardID: req.BillboardID,
				Name:        req.Name,
			}
			if err := repo.Create(ctx, cat); err != nil {
				return nil, err
			}
			return cat, nil
		},
		List: func(c *gin.Context, storeID string) (any, error) {
			return repo.ListByStore(c.Request.Context(), storeID)
		},
	}
}
