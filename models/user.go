package models

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCashier Role = "CASHIER"
)

type User struct {
	ID           uint       `gorm:"primaryKey"           json:"id"`
	Username     string     `gorm:"uniqueIndex;size:120" json:"username"`
	FullName     string     `gorm:"size:180"             json:"full_name"`
	Role         Role       `gorm:"size:12;not null"     json:"role"`
	Phone        string     `gorm:"size:60"              json:"phone"`
	Address      string     `gorm:"size:255"             json:"address"`
	IDCardPath   string     `gorm:"size:255"             json:"id_card_path,omitempty"`
	PasswordHash string     `gorm:"size:255"             json:"-"` // never sent to the client
	IsActive     bool       `gorm:"default:true"         json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
