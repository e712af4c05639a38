package model

import "time"

// Organization is a node of the tenant hierarchy used to scope role assignment.
type Organization struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:128;not null" validate:"required,max=128"`
	Code      string    `json:"code" gorm:"size:128;not null;uniqueIndex" validate:"omitempty,max=128"`
	ParentID  *int64    `json:"parent_id" gorm:"index" validate:"omitempty,gt=0"`
	IsActive  bool      `json:"is_active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

func (o *Organization) TreeID() int64 { return o.ID }
func (o *Organization) TreeParentID() *int64 { return o.ParentID }

// Organizations carry no explicit sort key; siblings fall back to id order.
func (o *Organization) TreeSortKey() int { return 0 }

// OrganizationMove reassigns one organization to a new parent (nil makes it a root).
type OrganizationMove struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	ParentID *int64 `json:"parent_id"`
}
