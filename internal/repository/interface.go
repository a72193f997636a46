package repository

import (
	"context"

	"github.com/ifelsik/dirlist/internal/models"
)

type Repository interface {
	CreateListing(ctx context.Context, listing *models.Listing) (uint, error)
	GetListingByID(ctx context.Context, id uint64) (*models.Listing, error)
	GetListings(ctx context.Context, limit int) ([]*models.Listing, error)
}
