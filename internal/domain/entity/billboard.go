package entity

import "time"

type Billboard struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
