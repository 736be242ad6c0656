package contact

import (
	"context"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/pkg/database"
)

// Repository persists contact messages in the document store.
type Repository struct {
	store database.Store
}

// NewRepository creates a contact repository. store may be nil when the
// document store is not configured.
func NewRepository(store database.Store) *Repository {
	return &Repository{store: store}
}

// Save writes a contact message and returns its assigned id.
func (r *Repository) Save(ctx context.Context, msg *models.ContactMessage) (string, error) {
	if r.store == nil {
		return "", database.ErrUnavailable
	}
	return r.store.CreateDocument(ctx, models.KindContactMessage, msg)
}
