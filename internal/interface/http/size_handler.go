package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type SizeRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func NewSizeResource(repo repository.SizeRepository, guard *application.OwnershipGuard, logger *logrus.Logger) *Resource[SizeRequest] {
	return &Resource[SizeRequest]{
		Name:   "sizes",
		Logger: logger,
		Guard:  guard,
		Rules: func(req *SizeRequest) []Rule {
			return []Rule{
				{"Name is required", func() bool { return req.Name != "" }},
				{"Value is required", func() bool { return req.Value != "" }},
			}
		},
		Create: func(ctx context.Context, storeID string, req *SizeRequest) (any, error) {
			s := &entity.Size{
				StoreID: storeID,
				Name:    req.Name,
				Value:   req.Value,
			}
			if err := repo.Create(ctx, s); err != nil {
				return nil, err
			}
			return s, nil
		},
		List: func(c *gin.Context, storeID string) (any, error) {
			return repo.ListByStore(c.Request.Context(), storeID)
		},
	}
}
