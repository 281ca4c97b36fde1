package repositories

import "github.com/sbilibin2017/gw-recipe-atlas/internal/models"

// RegionRepository gives access to the regions collection.
type RegionRepository struct {
	*collection[models.Region]
}

func NewRegionRepository(store KeyValueStore, prefix string) *RegionRepository {
	return &RegionRepository{
		collection: newCollection(store, prefix, RegionsCollection, func(r models.Region) string { return r.ID }),
	}
}
