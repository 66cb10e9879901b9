package analytics

import (
	"fmt"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// catalog indexes categories by id.
type catalog map[string]models.Category

func newCatalog(categories []models.Category) catalog {
	c := make(catalog, len(categories))
	for _, cat := range categories {
		c[cat.ID] = cat
	}
	return c
}

// lookup resolves a category id. Categories are never deleted, so a miss
// means stored data references a row that does not exist.
func (c catalog) lookup(id string) (models.Category, error) {
	cat, ok := c[id]
	if !ok {
		return models.Category{}, apperrors.Wrap(apperrors.ErrInternalInconsistency,
			fmt.Errorf("category %q referenced by stored data is missing from the catalog", id))
	}
	return cat, nil
}
