// Package catalog provides read-only sources for item definitions and the
// recolor palette
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/rpg-room-mirror/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
)

// Repository defines the storage interface for the item catalog
type Repository interface {
	// GetDefinition retrieves one item definition by id
	GetDefinition(ctx context.Context, input *GetDefinitionInput) (*GetDefinitionOutput, error)

	// ListDefinitions retrieves every item definition
	ListDefinitions(ctx context.Context, input *ListDefinitionsInput) (*ListDefinitionsOutput, error)

	// PutDefinitions stores item definitions, replacing any with the same id
	PutDefinitions(ctx context.Context, input *PutDefinitionsInput) (*PutDefinitionsOutput, error)

	// GetRecolors retrieves the permitted recolor palette
	GetRecolors(ctx context.Context, input *GetRecolorsInput) (*GetRecolorsOutput, error)

	// SetRecolors replaces the permitted recolor palette
	SetRecolors(ctx context.Context, input *SetRecolorsInput) (*SetRecolorsOutput, error)
}

// GetDefinitionInput defines the request for retrieving a definition
type GetDefinitionInput struct {
	ID string
}

// GetDefinitionOutput defines the response for retrieving a definition
type GetDefinitionOutput struct {
	Definition *entities.ItemDefinition
}

// ListDefinitionsInput defines the request for listing definitions
type ListDefinitionsInput struct{}

// ListDefinitionsOutput defines the response for listing definitions,
// sorted by id
type ListDefinitionsOutput struct {
	Definitions []entities.ItemDefinition
}

// PutDefinitionsInput defines the request for storing definitions
type PutDefinitionsInput struct {
	Definitions []entities.ItemDefinition
}

// PutDefinitionsOutput defines the response for storing definitions
type PutDefinitionsOutput struct {
	Stored int
}

// GetRecolorsInput defines the request for the recolor palette
type GetRecolorsInput struct{}

// GetRecolorsOutput defines the response for the recolor palette
type GetRecolorsOutput struct {
	Recolors []string
}

// SetRecolorsInput defines the request for replacing the recolor palette
type SetRecolorsInput struct {
	Recolors []string
}

// SetRecolorsOutput defines the response for replacing the recolor palette
type SetRecolorsOutput struct{}
