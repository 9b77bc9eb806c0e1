package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/store-admin-api/config"
	"github.com/oksasatya/store-admin-api/pkg/helpers"
)

// Seeds a demo admin account with one store and starter catalog rows so the
// API is usable right after migrations.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, "Demo Admin").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var storeID string
	err = db.QueryRow(`
		INSERT INTO stores (name, user_id)
		VALUES ($1, $2)
		RETURNING id
	`, "Demo Store", userID).Scan(&storeID)
	if err != nil {
		log.Fatalf("failed to seed store: %v", err)
	}
	fmt.Printf("seeded store: id=%s\n", storeID)

	var billboardID string
	err = db.QueryRow(`
		INSERT INTO billboards (store_id, label, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`, storeID, "Summer Sale", "https://example.com/billboards/summer.png").Scan(&billboardID)
	if err != nil {
		log.Fatalf("failed to seed billboard: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO categories (store_id, billboard_id, name)
		VALUES ($1, $2, $3)
	`, storeID, billboardID, "Shirts"); err != nil {
		log.Fatalf("failed to seed category: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO sizes (store_id, name, value)
		VALUES ($1, 'Medium', 'M'), ($1, 'Large', 'L')
	`, storeID); err != nil {
		log.Fatalf("failed to seed sizes: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO colors (store_id, name, value)
		VALUES ($1, 'Black', '#000000'), ($1, 'White', '#FFFFFF')
	`, storeID); err != nil {
		log.Fatalf("failed to seed colors: %v", err)
	}
	fmt.Println("seeded starter catalog (billboard, category, sizes, colors)")
}
