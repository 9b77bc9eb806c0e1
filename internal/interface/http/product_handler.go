package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
	"github.com/oksasatya/store-admin-api/internal/infrastructure/search"
)

type ProductImageInput struct {
	URL string `json:"url"`
}

type ProductRequest struct {
	Name       string              `json:"name"`
	Price      entity.Decimal      `json:"price"`
	CategoryID string              `json:"categoryId"`
	SizeID     string              `json:"sizeId"`
	ColorID    string              `json:"colorId"`
	Images     []ProductImageInput `json:"images"`
	IsFeatured bool                `json:"isFeatured"`
	IsArchived bool                `json:"isArchived"`
}

// NewProductResource wires the product pipeline. idx may be nil; indexing is
// best-effort and never fails the create.
func NewProductResource(repo repository.ProductRepository, idx *search.ProductsIndex, guard *application.OwnershipGuard, logger *logrus.Logger) *Resource[ProductRequest] {
	return &Resource[ProductRequest]{
		Name:   "products",
		Logger: logger,
		Guard:  guard,
		Rules: func(req *ProductRequest) []Rule {
			return []Rule{
				{"Name is required", func() bool { return req.Name != "" }},
				{"Images are required", func() bool { return len(req.Images) > 0 }},
				{"Price is required", func() bool { return !req.Price.IsZero() }},
				{"Category id is required", func() bool { return req.CategoryID != "" }},
				{"Size id is required", func() bool { return req.SizeID != "" }},
				{"Color id is required", func() bool { return req.ColorID != "" }},
			}
		},
		Create: func(ctx context.Context, storeID string, req *ProductRequest) (any, error) {
			p := &entity.Product{
				StoreID:    storeID,
				CategoryID: req.CategoryID,
				SizeID:     req.SizeID,
				ColorID:    req.ColorID,
				Name:       req.Name,
				Price:      req.Price,
				IsFeatured: req.IsFeatured,
				IsArchived: req.IsArchived,
			}
			for _, img := range req.Images {
				p.Images = append(p.Images, entity.ProductImage{URL: img.URL})
			}
			if err := repo.Create(ctx, p); err != nil {
				return nil, err
			}
			if idx != nil {
				idx.IndexProduct(ctx, p)
			}
			return p, nil
		},
		List: func(c *gin.Context, storeID string) (any, error) {
			f := repository.ProductFilter{
				StoreID:    storeID,
				CategoryID: c.Query("categoryId"),
				SizeID:     c.Query("sizeId"),
				ColorID:    c.Query("colorId"),
				// Any non-empty value flips the filter on, "false" included;
				// this mirrors the admin UI's existing truthiness handling.
				FeaturedOnly: c.Query("isFeatured") != "",
			}
			return repo.List(c.Request.Context(), f)
		},
	}
}
