package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type ColorRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func NewColorResource(repo repository.ColorRepository, guard *application.OwnershipGuard, logger *logrus.Logger) *Resource[ColorRequest] {
	return &Resource[ColorRequest]{
		Name:   "colors",
		Logger: logger,
		Guard:  guard,
		Rules: func(req *ColorRequest) []Rule {
			return []Rule{
				{"Name is required", func() bool { return req.Name != "" }},
				{"Value is required", func() bool { return req.Value != "" }},
			}
		},
		Create: func(ctx context.Context, storeID string, req *ColorRequest) (any, error) {
			col := &entity.Color{
				StoreID: storeID,
				Name:    req.Name,
				Value:   req.Value,
			}
			if err := repo.Create(ctx, col); err != nil {
				return nil, err
			}
			return col, nil
		},
		List: func(c *gin.Context, storeID string) (any, error) {
			return repo.ListByStore(c.Request.Context(), storeID)
		},
	}
}
