package model

import "time"

// Center is a shopping center hosting one or more stores.
type Center struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Location string `json:"location" gorm:"size:255"`
}

// Store is a monitored retail location.
type Store struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	CenterID  uint      `json:"center_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	Center Center `json:"-" gorm:"foreignKey:CenterID"`
}

// StoreView is a store joined with its center, the shape the store picker uses.
type StoreView struct {
	StoreID        uint   `json:"store_id"`
	StoreName      string `json:"store_name"`
	CenterID       uint   `json:"center_id"`
	CenterName     string `json:"center_name"`
	CenterLocation string `json:"center_location"`
}
