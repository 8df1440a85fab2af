package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the application-level role stored on a profile.
type Role string

const (
	RoleStudent   Role = "student"
	RoleMentor    Role = "mentor"
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
)

// CanManageDesigns reports whether the role may operate status transitions.
func (r Role) CanManageDesigns() bool {
	return r == RoleAdmin || r == RoleMentor
}

// Profile is the application identity record, keyed by the auth provider's
// user id. Profiles are provisioned lazily on first write and never deleted
// by the application.
type Profile struct {
	ID                uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email             string    `json:"email" db:"email" gorm:"type:text;not null"`
	FirstName         *string   `json:"first_name,omitempty" db:"first_name" gorm:"type:text"`
	LastName          *string   `json:"last_name,omitempty" db:"last_name" gorm:"type:text"`
	Username          *string   `json:"username,omitempty" db:"username" gorm:"type:text"`
	AvatarURL         *string   `json:"avatar_url,omitempty" db:"avatar_url" gorm:"type:text"`
	Bio               *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	Role              Role      `json:"role" db:"role" gorm:"type:text;not null;default:student"`
	Phone             *string   `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Location          *string   `json:"location,omitempty" db:"location" gorm:"type:text"`
	LinkedinURL       *string   `json:"linkedin_url,omitempty" db:"linkedin_url" gorm:"type:text"`
	GithubURL         *string   `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	PortfolioURL      *string   `json:"portfolio_url,omitempty" db:"portfolio_url" gorm:"type:text"`
	YearsOfExperience int       `json:"years_of_experience" db:"years_of_experience" gorm:"not null;default:0"`
	IsActive          bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	EmailVerified     bool      `json:"email_verified" db:"email_verified" gorm:"not null;default:false"`
	CreatedAt         time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at" gorm:"not null;default:now()"`
}

func (Profile) TableName() string {
	return "profiles"
}
