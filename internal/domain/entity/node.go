package entity

import (
	"time"

	"github.com/google/uuid"
)

// Node is a single conversation thread inside a workspace, bound to one of
// the fixed advisor models from the catalog (ModelID "1".."6").
type Node struct {
	ID          uuid.UUID // The unique identifier for the node.
	UserID      uuid.UUID // Links the node to its owning User.
	WorkspaceID uuid.UUID // Links the node to its parent Workspace.
	Name        string    // Display name chosen by the owner.
	ModelID     string    // Catalog ID of the advisor model backing this node.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
