package models

import "time"

// Rating is a star rating given by one user to another.
// At most one row exists per (RaterUserID, RatedUserID) pair; the composite
// unique index lets concurrent submissions collapse into a single upsert.
type Rating struct {
	ID          uint `gorm:"primaryKey"`
	RaterUserID uint `gorm:"not null;uniqueIndex:idx_rater_rated"`
	RatedUserID uint `gorm:"not null;uniqueIndex:idx_rater_rated"`
	Stars       int  `gorm:"not null;check:stars >= 1 AND stars <= 5"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	RaterUser User `gorm:"foreignKey:RaterUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	RatedUser User `gorm:"foreignKey:RatedUserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
