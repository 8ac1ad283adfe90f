package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceModel mirrors the 'workspaces' table. UserID references users.id (UUID).
type WorkspaceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Nodes []NodeModel `gorm:"foreignKey:WorkspaceID"`
}

// TableName explicitly sets the table name for GORM.
func (WorkspaceModel) TableName() string {
	return "workspaces"
}
