package models

import "time"

// Attendance records whether a user plans to show up for a game.
// One row per (GameID, UserID); repeated submissions update in place.
type Attendance struct {
	ID          uint `gorm:"primaryKey"`
	GameID      uint `gorm:"not null;uniqueIndex:idx_game_user"`
	UserID      uint `gorm:"not null;uniqueIndex:idx_game_user"`
	IsAttending bool `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Game Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
