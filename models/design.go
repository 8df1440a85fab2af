package models

import (
	"time"

	"github.com/google/uuid"
)

// DesignStatus is the lifecycle state of a submitted design.
type DesignStatus string

const (
	StatusPending       DesignStatus = "pending"
	StatusAccepted      DesignStatus = "accepted"
	StatusInDevelopment DesignStatus = "in_development"
	StatusCompleted     DesignStatus = "completed"
	StatusRejected      DesignStatus = "rejected"
)

// DesignType categorizes what kind of site a design describes.
type DesignType string

const (
	TypeWebsite        DesignType = "website"
	TypeWebApplication DesignType = "web_application"
	TypeLandingPage    DesignType = "landing_page"
)

// Design represents a submitted project moving through the review and
// development workflow.
type Design struct {
	ID                    uuid.UUID               `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID                uuid.UUID               `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index"`
	Name                  string                  `json:"name" db:"name" gorm:"type:text;not null"`
	Type                  DesignType              `json:"type" db:"type" gorm:"type:text;not null"`
	PagesCount            int                     `json:"pages_count" db:"pages_count" gorm:"not null"`
	FigmaLink             *string                 `json:"figma_link,omitempty" db:"figma_link" gorm:"type:text"`
	Description           *string                 `json:"description,omitempty" db:"description" gorm:"type:text"`
	Status                DesignStatus            `json:"status" db:"status" gorm:"type:text;not null;default:pending;index"`
	AdminNotes            *string                 `json:"admin_notes,omitempty" db:"admin_notes" gorm:"type:text"`
	CreatedAt             time.Time               `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
	UpdatedAt             time.Time               `json:"updated_at" db:"updated_at" gorm:"not null;default:now()"`
	AcceptedAt            *time.Time              `json:"accepted_at,omitempty" db:"accepted_at"`
	DevelopmentStartedAt  *time.Time              `json:"development_started_at,omitempty" db:"development_started_at"`
	CompletedAt           *time.Time              `json:"completed_at,omitempty" db:"completed_at"`
	StatusHistory         []DesignStatusHistory   `json:"status_history,omitempty" gorm:"foreignKey:DesignID;references:ID;constraint:OnDelete:CASCADE"`
	TeamMembers           []DevelopmentTeamMember `json:"team_members,omitempty" gorm:"foreignKey:DesignID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Design) TableName() string {
	return "designs"
}

// IsTerminal reports whether no further transition may leave the status.
func (s DesignStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Valid reports whether s is one of the known lifecycle statuses.
func (s DesignStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInDevelopment, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Valid reports whether t is one of the known design types.
func (t DesignType) Valid() bool {
	switch t {
	case TypeWebsite, TypeWebApplication, TypeLandingPage:
		return true
	}
	return false
}
