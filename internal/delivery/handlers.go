package delivery

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ifelsik/dirlist/internal/middleware"
	"github.com/ifelsik/dirlist/internal/usecase"
	"github.com/ifelsik/dirlist/internal/utils/fileutil"
	"github.com/ifelsik/dirlist/internal/utils/pathutil"
	"github.com/ifelsik/dirlist/internal/utils/promise"
)

type ListingHandlers struct {
	log     *logrus.Entry
	usecase usecase.UseCase
	rootDir string
}

func NewListingHandlers(usecase usecase.UseCase, log *logrus.Logger, rootDir string) *ListingHandlers {
	return &ListingHandlers{
		usecase: usecase,
		log:     logrus.NewEntry(log),
		rootDir: rootDir,
	}
}

func (h *ListingHandlers) ListDirectory(w http.ResponseWriter, r *http.Request) {
	log := h.log
	if id, ok := middleware.GetRequestID(r); ok {
		log = log.WithField("request_id", id)
	}
	log.Debug("Listing directory")

	path, err := pathutil.FromRequest(r, h.rootDir)
	if err != nil {
		log.Errorf("Failed to resolve directory param: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resultCh := promise.Go(func() (*usecase.ListingDetail, error) {
		return h.usecase.ListDirectory(r.Context(), path.Abs)
	})

	select {
	case <-r.Context().Done():
		log.Warn("Request cancelled by client")
		return
	case result := <-resultCh:
		if result.Err != nil {
			log.Errorf("Failed to list directory: %v", result.Err)
			w.WriteHeader(listingStatus(result.Err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result.Value); err != nil {
			log.Errorf("Failed to encode listing: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
	log.Debug("Listing response sent")
}

func (h *ListingHandlers) GetListingsHistory(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("Getting listings history")

	listingsHistory, err := h.usecase.GetListingsHistory(r.Context())
	if err != nil {
		h.log.Errorf("Failed to get listings history: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err = encoder.Encode(listingsHistory)
	if err != nil {
		h.log.Errorf("Failed to encode listings history: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.log.Debug("Listings history response sent")
}

func (h *ListingHandlers) GetListingByID(w http.ResponseWriter, r *http.Request) {
	h.log.Debug("Getting listing by ID")

	vars := mux.Vars(r)
	strID, ok := vars["id"]
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseUint(strID, 10, 64)
	if err != nil {
		h.log.Errorf("Failed to parse listing ID: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	listing, err := h.usecase.GetListingByID(r.Context(), id)
	if err != nil {
		h.log.Errorf("Failed to get listing by ID: %v", err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listing); err != nil {
		h.log.Errorf("Failed to encode listing: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.log.Debug("Listing response sent")
}

// listingStatus maps lister errors onto HTTP statuses:
// missing directory 404, unreadable 403, not-a-directory 400.
func listingStatus(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, fs.ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, fileutil.ErrNotDirectory):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
