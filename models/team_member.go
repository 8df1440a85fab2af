package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTeamRole is assigned to members who join without an explicit role.
const DefaultTeamRole = "developer"

// DevelopmentTeamMember links a user to a design's development team. The
// unique (design_id, user_id) index makes a duplicate join a constraint
// violation rather than a silent second row.
type DevelopmentTeamMember struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	DesignID uuid.UUID `json:"design_id" db:"design_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_design_user"`
	UserID   uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_design_user"`
	Role     string    `json:"role" db:"role" gorm:"type:text;not null;default:developer"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at" gorm:"not null;default:now()"`
	Design   *Design   `json:"design,omitempty" gorm:"foreignKey:DesignID;references:ID"`
	User     *Profile  `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (DevelopmentTeamMember) TableName() string {
	return "development_team_members"
}
