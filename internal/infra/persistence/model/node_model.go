package model

import (
	"time"

	"github.com/google/uuid"
)

// NodeModel mirrors the 'nodes' table. WorkspaceID references workspaces.id,
// UserID denormalizes the owner for direct owner-scoped queries.
type NodeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	ModelID     string    `gorm:"type:varchar(8);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Messages []MessageModel `gorm:"foreignKey:NodeID"`
}

// TableName explicitly sets the table name for GORM.
func (NodeModel) TableName() string {
	return "nodes"
}
