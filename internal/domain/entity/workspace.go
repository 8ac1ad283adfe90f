package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workspace groups a user's advisor nodes into one decision context.
// Deleting a workspace removes its nodes and their messages.
type Workspace struct {
	ID        uuid.UUID // The unique identifier for the workspace.
	UserID    uuid.UUID // Links the workspace to its owning User.
	Name      string    // Display name chosen by the owner.
	CreatedAt time.Time
	UpdatedAt time.Time
}
