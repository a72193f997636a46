package usecase

import (
	"context"
	"time"

	"github.com/ifelsik/dirlist/internal/utils/fileutil"
)

type ListingSummary struct {
	ID        uint      `json:"id"`
	Directory string    `json:"directory"`
	FileCount int       `json:"fileCount"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListingDetail struct {
	ID        uint                 `json:"id"`
	Directory string               `json:"directory"`
	Files     []fileutil.FileEntry `json:"files"`
}

type UseCase interface {
	ListDirectory(ctx context.Context, dir string) (*ListingDetail, error)
	GetListingsHistory(ctx context.Context) ([]*ListingSummary, error)
	GetListingByID(ctx context.Context, id uint64) (*ListingDetail, error)
}
