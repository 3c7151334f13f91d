package models

import (
	"time"

	"gorm.io/gorm"
)

// Game represents a scheduled match against an opposing team.
type Game struct {
	gorm.Model
	KickoffAt       time.Time `gorm:"not null;index"`
	Location        string    `gorm:"size:200;not null"`
	Opponent        string    `gorm:"size:100;not null"`
	CreatedByUserID uint      `gorm:"not null"`

	CreatedByUser User `gorm:"foreignKey:CreatedByUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
