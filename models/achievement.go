package models

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a catalog badge that can be awarded to users explicitly.
// Derived badges (per completed design, per completed development) are
// computed on read and never stored here.
type Achievement struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	IconURL     *string   `json:"icon_url,omitempty" db:"icon_url" gorm:"type:text"`
	BadgeColor  *string   `json:"badge_color,omitempty" db:"badge_color" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement records an explicit award of a catalog achievement.
type UserAchievement struct {
	ID            uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID        uuid.UUID    `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement"`
	AchievementID uuid.UUID    `json:"achievement_id" db:"achievement_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement"`
	AwardedAt     time.Time    `json:"awarded_at" db:"awarded_at" gorm:"not null;default:now()"`
	Achievement   *Achievement `json:"achievement,omitempty" gorm:"foreignKey:AchievementID;references:ID"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
