// model/menu.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// MenuType enumerates the kinds of navigation/operation nodes.
type MenuType string

const (
	MenuTypeMenu   MenuType = "menu"
	MenuTypePage   MenuType = "page"
	MenuTypeButton MenuType = "button"
	MenuTypeLink   MenuType = "link"
	MenuTypeIframe MenuType = "iframe"
	MenuTypeDir    MenuType = "dir"
)

var allowedMenuTypes = map[MenuType]struct{}{
	MenuTypeMenu:   {},
	MenuTypePage:   {},
	MenuTypeButton: {},
	MenuTypeLink:   {},
	MenuTypeIframe: {},
	MenuTypeDir:    {},
}

// NormalizeMenuType maps unknown or empty values to MenuTypeMenu.
func NormalizeMenuType(t string) MenuType {
	if _, ok := allowedMenuTypes[MenuType(t)]; ok {
		return MenuType(t)
	}
	return MenuTypeMenu
}

// Menu is a navigable or operable node of the admin console.
type Menu struct {
	ID             int64          `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"size:128;not null;uniqueIndex" validate:"required,max=128"`
	Title          string         `json:"title" gorm:"size:128;not null" validate:"required,max=128"`
	Path           *string        `json:"path" gorm:"size:255;index" validate:"omitempty,max=255"`
	Component      *string        `json:"component" gorm:"size:255"`
	Icon           string         `json:"icon" gorm:"size:64"`
	ParentID       *int64         `json:"parent_id" gorm:"index" validate:"omitempty,gt=0"`
	SortOrder      int            `json:"sort_order" gorm:"not null;default:0"`
	Level          int            `json:"level" gorm:"not null;default:1"`
	IsHidden       bool           `json:"is_hidden" gorm:"not null;default:false"`
	IsDisabled     bool           `json:"is_disabled" gorm:"not null;default:false"`
	IsSystem       bool           `json:"is_system" gorm:"not null;default:false"`
	MenuType       MenuType       `json:"menu_type" gorm:"size:16;not null;default:menu"`
	PermissionCode string         `json:"permission_code,omitempty" gorm:"size:128;index"`
	Redirect       string         `json:"redirect,omitempty" gorm:"size:255"`
	Meta           datatypes.JSON `json:"meta,omitempty"`
	Description    string         `json:"description,omitempty" gorm:"size:512"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Menu) TableName() string {
	return "menus"
}

func (m *Menu) TreeID() int64 { return m.ID }
func (m *Menu) TreeParentID() *int64 { return m.ParentID }
func (m *Menu) TreeSortKey() int { return m.SortOrder }

// Clone returns a deep copy; stores hand out clones so callers never alias stored rows.
func (m *Menu) Clone() *Menu {
	c := *m
	if m.Path != nil {
		p := *m.Path
		c.Path = &p
	}
	if m.Component != nil {
		comp := *m.Component
		c.Component = &comp
	}
	if m.ParentID != nil {
		pid := *m.ParentID
		c.ParentID = &pid
	}
	if m.Meta != nil {
		c.Meta = append(datatypes.JSON(nil), m.Meta...)
	}
	return &c
}

// MenuOrder is one entry of a batch re-sort.
type MenuOrder struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	SortOrder int    `json:"sort_order"`
	ParentID  *int64 `json:"parent_id"`
}
