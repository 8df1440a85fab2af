package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage stores a contact-form submission before it is relayed to the
// email provider, so a relay failure never loses the message.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Type      string    `json:"type" db:"type" gorm:"type:text;not null;default:general"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:new"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
