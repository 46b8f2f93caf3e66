package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
	"github.com/KirkDiggler/rpg-room-mirror/internal/repositories/catalog"
)

const catalogFile = `{
  "items": [
    {"id": "sofa", "name": "Sofa", "width": 2, "height": 1, "can_sit": true, "stack_height_unit": 1},
    {"id": "shelf", "name": "Shelf", "width": 1, "height": 1, "stackable": true, "stack_height_unit": 1.5}
  ],
  "recolors": ["#AA0000", "#00AA00"]
}`

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestNewInMemoryFromFile(t *testing.T) {
	repo, err := catalog.NewInMemoryFromFile(writeFile(t, catalogFile))
	require.NoError(t, err)

	ctx := context.Background()
	list, err := repo.ListDefinitions(ctx, &catalog.ListDefinitionsInput{})
	require.NoError(t, err)
	require.Len(t, list.Definitions, 2)
	assert.Equal(t, "shelf", list.Definitions[0].ID)
	assert.Equal(t, 1.5, list.Definitions[0].StackHeightUnit)
	assert.Equal(t, "sofa", list.Definitions[1].ID)

	recolors, err := repo.GetRecolors(ctx, &catalog.GetRecolorsInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"#AA0000", "#00AA00"}, recolors.Recolors)
}

func TestNewInMemoryFromFileErrors(t *testing.T) {
	_, err := catalog.NewInMemoryFromFile("")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = catalog.NewInMemoryFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.IsNotFound(err))

	_, err = catalog.NewInMemoryFromFile(writeFile(t, "{not json"))
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = catalog.NewInMemoryFromFile(writeFile(t, `{"items":[{"name":"no id"}]}`))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestInMemoryGetDefinition(t *testing.T) {
	repo, err := catalog.NewInMemoryFromFile(writeFile(t, catalogFile))
	require.NoError(t, err)

	out, err := repo.GetDefinition(context.Background(), &catalog.GetDefinitionInput{ID: "sofa"})
	require.NoError(t, err)
	assert.True(t, out.Definition.CanSit)

	out.Definition.CanSit = false
	again, err := repo.GetDefinition(context.Background(), &catalog.GetDefinitionInput{ID: "sofa"})
	require.NoError(t, err)
	assert.True(t, again.Definition.CanSit, "returned definitions are copies")

	_, err = repo.GetDefinition(context.Background(), &catalog.GetDefinitionInput{ID: "bed"})
	assert.True(t, errors.IsNotFound(err))
}
