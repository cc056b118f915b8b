package checkout

import (
	"context"

	"sanjab/internal/models"
)

// Store persists completed and declined transactions with their
// settlement lines.
type Store interface {
	SaveTransaction(ctx context.Context, tx *models.Transaction) error
}
