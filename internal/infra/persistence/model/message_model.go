package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table. NodeID references nodes.id (UUID).
type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NodeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Sender    string    `gorm:"type:varchar(8);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
