package model

import "time"

// User is the subset of the account record permission resolution needs.
// Role is the legacy global role field (e.g. "super_admin"), independent of the role tables.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:128;not null;uniqueIndex"`
	Role      string    `json:"role" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
