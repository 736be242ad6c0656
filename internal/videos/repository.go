package videos

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/pkg/database"
)

// Repository persists and lists video metadata in the document store.
type Repository struct {
	store database.Store
}

// NewRepository creates a videos repository. store may be nil when the
// document store is not configured; operations then fail fast with
// database.ErrUnavailable.
func NewRepository(store database.Store) *Repository {
	return &Repository{store: store}
}

// Insert writes a video record and returns its assigned id.
func (r *Repository) Insert(ctx context.Context, v *models.Video) (string, error) {
	if r.store == nil {
		return "", database.ErrUnavailable
	}
	return r.store.CreateDocument(ctx, models.KindVideo, v)
}

// List returns up to limit raw video documents in store-default order.
func (r *Repository) List(ctx context.Context, limit int64) ([]bson.M, error) {
	if r.store == nil {
		return nil, database.ErrUnavailable
	}
	return r.store.GetDocuments(ctx, models.KindVideo, bson.M{}, limit)
}
