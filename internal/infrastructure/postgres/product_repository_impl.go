package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create writes the product row and its image rows in one transaction so a
// failed image insert never leaves a half-created product behind.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO products (store_id, category_id, size_id, color_id, name, price, is_featured, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, p.StoreID, p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Price.String(), p.IsFeatured, p.IsArchived)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}

	for i := range p.Images {
		img := &p.Images[i]
		img.ProductID = p.ID
		row := tx.QueryRow(ctx, `
			INSERT INTO product_images (product_id, url)
			VALUES ($1, $2)
			RETURNING id, created_at
		`, img.ProductID, img.URL)
		if err := row.Scan(&img.ID, &img.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *ProductRepository) List(ctx context.Context, f repository.ProductFilter) ([]entity.Product, error) {
	conds := []string{"p.store_id = $1", "p.is_archived = FALSE"}
	args := []any{f.StoreID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.CategoryID != "" {
		add("p.category_id = $%d", f.CategoryID)
	}
	if f.SizeID != "" {
		add("p.size_id = $%d", f.SizeID)
	}
	if f.ColorID != "" {
		add("p.color_id = $%d", f.ColorID)
	}
	if f.FeaturedOnly {
		conds = append(conds, "p.is_featured = TRUE")
	}

	query := `
		SELECT p.id, p.store_id, p.category_id, p.size_id, p.color_id, p.name,
		       p.price::text, p.is_featured, p.is_archived, p.created_at, p.updated_at,
		       c.id, c.store_id, c.billboard_id, c.name, c.created_at, c.updated_at,
		       s.id, s.store_id, s.name, s.value, s.created_at, s.updated_at,
		       co.id, co.store_id, co.name, co.value, co.created_at, co.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN sizes s ON s.id = p.size_id
		JOIN colors co ON co.id = p.color_id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.Product, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var (
			p     entity.Product
			price string
			cat   entity.Category
			sz    entity.Size
			col   entity.Color
		)
		if err := rows.Scan(
			&p.ID, &p.StoreID, &p.CategoryID, &p.SizeID, &p.ColorID, &p.Name,
			&price, &p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
			&cat.ID, &cat.StoreID, &cat.BillboardID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt,
			&sz.ID, &sz.StoreID, &sz.Name, &sz.Value, &sz.CreatedAt, &sz.UpdatedAt,
			&col.ID, &col.StoreID, &col.Name, &col.Value, &col.CreatedAt, &col.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Price = entity.Decimal(price)
		p.Category = &cat
		p.Size = &sz
		p.Color = &col
		p.Images = make([]entity.ProductImage, 0)
		items = append(items, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	if err := r.attachImages(ctx, items, ids); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ProductRepository) attachImages(ctx context.Context, items []entity.Product, ids []string) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, url, created_at
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY created_at
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[string]*entity.Product, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
	for rows.Next() {
		var img entity.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.CreatedAt); err != nil {
			return err
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return rows.Err()
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
