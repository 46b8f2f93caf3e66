package catalog

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.RWMutex
	store    map[string]entities.ItemDefinition
	recolors []string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]entities.ItemDefinition),
	}
}

// fileData is the JSON layout accepted by NewInMemoryFromFile
type fileData struct {
	Items    []entities.ItemDefinition `json:"items"`
	Recolors []string                  `json:"recolors"`
}

// NewInMemoryFromFile creates an in-memory repository from a JSON file of
// the form {"items": [...], "recolors": [...]}
func NewInMemoryFromFile(path string) (*InMemoryRepository, error) {
	if path == "" {
		return nil, errors.InvalidArgument("catalog path is required")
	}

	raw, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}

	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.InvalidArgumentf("catalog file %s is not valid JSON: %v", path, err)
	}

	repo := NewInMemory()
	if _, err := repo.PutDefinitions(context.Background(), &PutDefinitionsInput{Definitions: data.Items}); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog file %s", path)
	}
	repo.recolors = data.Recolors

	return repo, nil
}

// GetDefinition retrieves one item definition by id
func (r *InMemoryRepository) GetDefinition(_ context.Context, input *GetDefinitionInput) (*GetDefinitionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDefinitionIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("item definition %s not found", input.ID)
	}

	return &GetDefinitionOutput{Definition: &def}, nil
}

// ListDefinitions retrieves every item definition sorted by id
func (r *InMemoryRepository) ListDefinitions(_ context.Context, _ *ListDefinitionsInput) (*ListDefinitionsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]entities.ItemDefinition, 0, len(r.store))
	for _, def := range r.store {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })

	return &ListDefinitionsOutput{Definitions: defs}, nil
}

// PutDefinitions stores item definitions
func (r *InMemoryRepository) PutDefinitions(_ context.Context, input *PutDefinitionsInput) (*PutDefinitionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	for _, def := range input.Definitions {
		if def.ID == "" {
			return nil, errors.InvalidArgument(errDefinitionIDEmpty)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, def := range input.Definitions {
		r.store[def.ID] = def
	}

	return &PutDefinitionsOutput{Stored: len(input.Definitions)}, nil
}

// GetRecolors retrieves the permitted recolor palette
func (r *InMemoryRepository) GetRecolors(_ context.Context, _ *GetRecolorsInput) (*GetRecolorsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &GetRecolorsOutput{Recolors: append([]string(nil), r.recolors...)}, nil
}

// SetRecolors replaces the permitted recolor palette
func (r *InMemoryRepository) SetRecolors(_ context.Context, input *SetRecolorsInput) (*SetRecolorsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.recolors = append([]string(nil), input.Recolors...)
	return &SetRecolorsOutput{}, nil
}

// Verify that InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)
