package models

import (
	"time"

	"github.com/google/uuid"
)

// DesignStatusHistory is an append-only audit record written on every status
// transition. Rows are never updated or deleted after insertion.
type DesignStatusHistory struct {
	ID        uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	DesignID  uuid.UUID    `json:"design_id" db:"design_id" gorm:"type:uuid;not null;index"`
	Status    DesignStatus `json:"status" db:"status" gorm:"type:text;not null"`
	ChangedBy *uuid.UUID   `json:"changed_by,omitempty" db:"changed_by" gorm:"type:uuid"`
	Notes     *string      `json:"notes,omitempty" db:"notes" gorm:"type:text"`
	CreatedAt time.Time    `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}

func (DesignStatusHistory) TableName() string {
	return "design_status_history"
}
