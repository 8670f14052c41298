// main.go
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"go-storefront/cart"
	"go-storefront/catalog"
	"go-storefront/controllers"
	"go-storefront/middleware"
	"go-storefront/routes"
	"go-storefront/utils"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found. Proceeding with environment variables.")
	}

	// Pick the catalog source: a remote endpoint fetched once at startup, a
	// JSON file, or the built-in product list.
	var source catalog.Source
	if url := os.Getenv("CATALOG_URL"); url != "" {
		remote := catalog.NewRemoteSource(url, log)
		go remote.Load(context.Background())
		source = remote
	} else if path := os.Getenv("CATALOG_FILE"); path != "" {
		static, err := catalog.NewStaticSourceFromFile(path, log)
		if err != nil {
			log.WithError(err).Fatal("Failed to load catalog file")
		}
		source = static
	} else {
		source = catalog.NewStaticSource(catalog.DefaultProducts())
	}

	// Initialize the in-memory cart store and controllers
	store := cart.NewStore()
	catalogController := controllers.NewCatalogController(source, store)
	cartController := controllers.NewCartController(source, store)
	healthController := controllers.NewHealthController(source)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.SessionMiddleware)

	// Register routes
	routes.RegisterRoutes(router, catalogController, cartController, healthController)

	// Start the server
	port := utils.Getenv("PORT", "8000")
	log.Infof("Server is running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
