package usecase

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/ifelsik/dirlist/internal/models"
	"github.com/ifelsik/dirlist/internal/repository"
	"github.com/ifelsik/dirlist/internal/utils/fileutil"
)

type ListingUseCase struct {
	logger     *logrus.Entry
	lister     *fileutil.Lister
	repository repository.Repository
}

func NewListingUseCase(lister *fileutil.Lister, repo repository.Repository, log *logrus.Logger) *ListingUseCase {
	return &ListingUseCase{
		logger:     logrus.NewEntry(log),
		lister:     lister,
		repository: repo,
	}
}

// ListDirectory lists the regular files of dir and records the
// snapshot before returning it.
func (u *ListingUseCase) ListDirectory(ctx context.Context, dir string) (*ListingDetail, error) {
	u.logger.Debugf("Listing directory: %s", dir)

	files, err := u.lister.ListRegularFiles(dir)
	if err != nil {
		u.logger.Errorf("Failed to list directory: %v", err)
		return nil, err
	}

	filesJson, err := json.Marshal(files)
	if err != nil {
		u.logger.Errorf("Failed to marshal files: %v", err)
		return nil, err
	}

	listing := &models.Listing{
		Directory: dir,
		FileCount: len(files),
		Files:     datatypes.JSON(filesJson),
	}
	id, err := u.repository.CreateListing(ctx, listing)
	if err != nil {
		u.logger.Errorf("Failed to save listing: %v", err)
		return nil, err
	}

	u.logger.Debugf("Directory listed, %d file(s)", len(files))
	return &ListingDetail{
		ID:        id,
		Directory: dir,
		Files:     files,
	}, nil
}

func (u *ListingUseCase) GetListingsHistory(ctx context.Context) ([]*ListingSummary, error) {
	u.logger.Debugln("Getting listings history")

	const limit = 25
	listingModels, err := u.repository.GetListings(ctx, limit)
	if err != nil {
		u.logger.Errorf("Failed to get listings history: %v", err)
		return nil, err
	}

	listingsHistory := make([]*ListingSummary, len(listingModels))
	for i, listingModel := range listingModels {
		listingsHistory[i] = &ListingSummary{
			ID:        listingModel.ID,
			Directory: listingModel.Directory,
			FileCount: listingModel.FileCount,
			CreatedAt: listingModel.CreatedAt,
		}
	}

	u.logger.Debugf("Listings history formed successfully: %v", listingsHistory)
	return listingsHistory, nil
}

func (u *ListingUseCase) GetListingByID(ctx context.Context, id uint64) (*ListingDetail, error) {
	u.logger.Debugf("Getting listing by id: %d", id)

	listingModel, err := u.repository.GetListingByID(ctx, id)
	if err != nil {
		u.logger.Errorf("Failed to get listing: %v", err)
		return nil, err
	}

	var files []fileutil.FileEntry
	if err := json.Unmarshal(listingModel.Files, &files); err != nil {
		u.logger.Errorf("Failed to unmarshal files: %v", err)
		return nil, err
	}

	result := &ListingDetail{
		ID:        listingModel.ID,
		Directory: listingModel.Directory,
		Files:     files,
	}
	u.logger.Debugf("Listing got: %v", result)
	return result, nil
}
