package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ifelsik/dirlist/internal/models"
)

type ORMrepository struct {
	logger *logrus.Entry
	db     *gorm.DB
}

func NewORMrepository(db *gorm.DB, log *logrus.Logger) *ORMrepository {
	db.AutoMigrate(&models.Listing{})

	return &ORMrepository{
		logger: logrus.NewEntry(log),
		db:     db,
	}
}

func (rep *ORMrepository) CreateListing(ctx context.Context, listing *models.Listing) (uint, error) {
	result := rep.db.WithContext(ctx).Create(listing)
	if result.Error != nil {
		rep.logger.Errorf("Failed to save listing: %v", result.Error)
		return 0, result.Error
	}

	rep.logger.Debug("Listing saved")
	return listing.ID, nil
}

func (rep *ORMrepository) GetListingByID(ctx context.Context, id uint64) (*models.Listing, error) {
	rep.logger.Debugf("Getting listing by id: %d", id)

	listing := new(models.Listing)
	result := rep.db.WithContext(ctx).Take(listing, id)
	if result.Error != nil {
		rep.logger.Errorf("Failed to get listing: %v", result.Error)
		return nil, result.Error
	}

	rep.logger.Debug("Listing got")
	return listing, nil
}

// Returns listing fields:
// id, created_at, directory, file_count
func (rep *ORMrepository) GetListings(ctx context.Context, limit int) ([]*models.Listing, error) {
	rep.logger.Debug("Getting listings count ", limit)

	var listings []*models.Listing
	result := rep.db.WithContext(ctx).
		Select("id", "created_at", "directory", "file_count").
		Limit(limit).
		Order("id desc").
		Find(&listings)
	if result.Error != nil {
		rep.logger.Errorf("Failed to get listings: %v", result.Error)
		return nil, result.Error
	}

	rep.logger.Debug("Listings got")
	return listings, nil
}

func ConnectPGSQL(host, user, password, dbName, port string) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host,
		user,
		password,
		dbName,
		port,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
