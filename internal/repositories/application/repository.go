// Package application defines the interface for character application persistence
package application

//go:generate mockgen -destination=mock/mock_repository.go -package=applicationmock github.com/Arx-Game/arxii-sub002/internal/repositories/application Repository

import (
	"context"

	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
)

// Repository defines the interface for character application persistence.
// Applications are the durable records produced by submitting a complete
// draft; unlike drafts they never expire.
type Repository interface {
	// Create stores a new character application
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the application ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character application by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if application doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByPlayerID retrieves every application a player has submitted
	// Returns errors.InvalidArgument for empty/invalid player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating an application
type CreateInput struct {
	Application *chargen.CharacterApplication
}

// CreateOutput defines the output for creating an application
type CreateOutput struct {
	Application *chargen.CharacterApplication
}

// GetInput defines the input for getting an application
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an application
type GetOutput struct {
	Application *chargen.CharacterApplication
}

// ListByPlayerIDInput defines the input for listing a player's applications
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's applications
type ListByPlayerIDOutput struct {
	Applications []*chargen.CharacterApplication
}
