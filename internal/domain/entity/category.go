package entity

import "time"

type Category struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"storeId"`
	BillboardID string    `json:"billboardId"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
