package internal

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ifelsik/dirlist/internal/delivery"
	"github.com/ifelsik/dirlist/internal/utils/httputil"
)

func HandleRoutes(handlers *delivery.ListingHandlers, log *zap.SugaredLogger) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/list", handlers.ListDirectory).Methods("GET")
	r.HandleFunc("/listings", handlers.GetListingsHistory).Methods("GET")
	r.HandleFunc("/listings/{id:[0-9]+}", handlers.GetListingByID).Methods("GET")

	loggingMw := httputil.NewLoggingMiddleware(log)
	panicMw := httputil.NewPanicMiddleware(log)

	return panicMw.Middleware(loggingMw.Middleware(r))
}
