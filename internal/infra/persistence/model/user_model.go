// Package model contains the GORM persistence models. They mirror the domain
// entities but carry storage concerns (column tags, constraints) the domain
// must not know about.
package model

import "time"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;size:320;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;size:1024;not null"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true"`
	IsVerified   bool      `gorm:"column:is_verified;not null;default:false"`
	Role         string    `gorm:"column:role;size:32;not null;default:subscriber"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default GORM table name.
func (UserModel) TableName() string {
	return "users"
}
