package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a catalog entry users can attach to their profile.
type Skill struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	IconURL     *string   `json:"icon_url,omitempty" db:"icon_url" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}

func (Skill) TableName() string {
	return "skills"
}

// UserSkill links a profile to a catalog skill with a proficiency level.
type UserSkill struct {
	ID              uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID          uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_skill"`
	SkillID         uuid.UUID `json:"skill_id" db:"skill_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_skill"`
	Level           string    `json:"level" db:"level" gorm:"type:text;not null;default:beginner"`
	YearsExperience int       `json:"years_experience" db:"years_experience" gorm:"not null;default:0"`
	IsPrimary       bool      `json:"is_primary" db:"is_primary" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
	Skill           *Skill    `json:"skill,omitempty" gorm:"foreignKey:SkillID;references:ID"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}
