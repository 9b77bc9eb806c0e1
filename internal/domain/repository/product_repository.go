package repository

import (
	"context"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
)

// ProductFilter narrows a product listing. Zero-valued fields are omitted
// from the query rather than matched against empty values.
type ProductFilter struct {
	StoreID    string
	CategoryID string
	SizeID     string
	ColorID    string
	// FeaturedOnly restricts to is_featured = true when set; unset means
	// featured and non-featured alike.
	FeaturedOnly bool
}

type ProductRepository interface {
	// Create inserts the product together with its image rows as a single
	// atomic write.
	Create(ctx context.Context, p *entity.Product) error
	// List returns non-archived products newest first with category, size,
	// color and images populated.
	List(ctx context.Context, f ProductFilter) ([]entity.Product, error)
}
