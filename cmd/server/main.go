package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/ifelsik/dirlist/internal"
	"github.com/ifelsik/dirlist/internal/delivery"
	"github.com/ifelsik/dirlist/internal/repository"
	"github.com/ifelsik/dirlist/internal/server"
	"github.com/ifelsik/dirlist/internal/usecase"
	"github.com/ifelsik/dirlist/internal/utils/fileutil"
	zaplog "github.com/ifelsik/dirlist/internal/utils/logger"
)

const defaultHost = "0.0.0.0"
const defaultPort = 8080
const defaultRoot = "."

func main() {
	log := internal.NewLogger()

	err := godotenv.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.Info(".env file read")

	dbConn, err := repository.ConnectPGSQL(
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_DB"),
		"5432",
	)
	if err != nil {
		log.Fatal(err)
	}
	log.Info("Connected to database")

	rootDir := os.Getenv("LISTER_ROOT")
	if rootDir == "" {
		rootDir = defaultRoot
	}
	log.Info("Serving listings under ", rootDir)

	repo := repository.NewORMrepository(dbConn, log)
	lister := fileutil.NewLister(afero.NewOsFs())
	usecase := usecase.NewListingUseCase(lister, repo, log)
	handlers := delivery.NewListingHandlers(usecase, log, rootDir)

	router := internal.HandleRoutes(handlers, zaplog.NewLogger())

	srv := server.NewServer(server.Config{Host: serverHost(), Port: serverPort()}, router)
	log.Info("Listing API server is starting on ", srv)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

func serverHost() string {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return defaultHost
}

func serverPort() uint32 {
	port, err := strconv.ParseUint(os.Getenv("SERVER_PORT"), 10, 32)
	if err != nil || port == 0 {
		return defaultPort
	}
	return uint32(port)
}
