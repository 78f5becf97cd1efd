package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Name     string `gorm:"size:180;not null" json:"name"`
	Phone    string `gorm:"size:60"           json:"phone"`
	Address  string `gorm:"size:255"          json:"address"`
	IsActive bool   `gorm:"default:true"      json:"is_active"`
}
