package catalog

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-room-mirror/internal/entities"
	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
)

// Load reads every definition and the recolor palette once and builds the
// immutable Catalog the mirror resolves furniture against
func Load(ctx context.Context, repo Repository) (*entities.Catalog, error) {
	if repo == nil {
		return nil, errors.InvalidArgument("repository is required")
	}

	defs, err := repo.ListDefinitions(ctx, &ListDefinitionsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load item definitions")
	}

	recolors, err := repo.GetRecolors(ctx, &GetRecolorsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recolor palette")
	}

	for _, def := range defs.Definitions {
		if def.Width <= 0 || def.Height <= 0 {
			slog.Warn("item definition has no footprint, treating as 1x1",
				"definition_id", def.ID,
				"width", def.Width,
				"height", def.Height)
		}
	}

	catalog := entities.NewCatalog(defs.Definitions, recolors.Recolors)
	slog.Debug("catalog loaded", "definitions", catalog.Len(), "recolors", len(recolors.Recolors))

	return catalog, nil
}
