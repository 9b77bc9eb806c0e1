package entity

import "time"

// Product is the richest catalog entity: it references a category, size and
// color from the same store and carries an ordered set of images persisted
// together with the product row.
type Product struct {
	ID         string    `json:"id"`
	StoreID    string    `json:"storeId"`
	CategoryID string    `json:"categoryId"`
	SizeID     string    `json:"sizeId"`
	ColorID    string    `json:"colorId"`
	Name       string    `json:"name"`
	Price      Decimal   `json:"price"`
	IsFeatured bool      `json:"isFeatured"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Category, Size and Color are populated by list queries only.
	Images   []ProductImage `json:"images,omitempty"`
	Category *Category      `json:"category,omitempty"`
	Size     *Size          `json:"size,omitempty"`
	Color    *Color         `json:"color,omitempty"`
}

type ProductImage struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
