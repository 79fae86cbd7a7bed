// Package domain contains the mechanic/staff directory model. This is
// directory data for job card assignment and bill footers; there is no
// login attached to it.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Role string

const (
	RoleMechanic Role = "mechanic"
	RoleManager  Role = "manager"
	RoleOwner    Role = "owner"
)

type User struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Phone     string       `gorm:"type:text" json:"phone"`
	Email     string       `gorm:"type:text" json:"email"`
	Role      Role         `gorm:"type:text;not null;default:'mechanic'" json:"role"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string { return "users" }
