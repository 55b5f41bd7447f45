package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soiemaison/storefront-backend/api"
	"github.com/soiemaison/storefront-backend/config"
	"github.com/soiemaison/storefront-backend/netpolicy"
	"github.com/soiemaison/storefront-backend/tryon"
	"github.com/soiemaison/storefront-backend/utils"
)

func main() {
	config.LoadConfig()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)

	// Outbound traffic rides the forwarding proxy during local development
	// and connects directly in production.
	policy := netpolicy.Direct()
	if !config.IsProduction() {
		var err error
		policy, err = netpolicy.Proxied(config.HTTPSProxy)
		if err != nil {
			log.Fatalf("Invalid proxy address: %v", err)
		}
		log.Infof("Local development mode: proxy %s enabled", config.HTTPSProxy)
	} else {
		log.Info("Production mode: direct internet connection")
	}

	if !config.IsProduction() {
		if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
			log.Fatalf("Failed to create upload dir: %v", err)
		}
	}

	provider, err := tryon.NewProvider(config.TryOnProvider, config.ReplicateAPIToken, config.GeminiAPIKey, policy.Client(0))
	if err != nil {
		log.Fatalf("Failed to initialize try-on provider: %v", err)
	}
	tryOnService := tryon.NewService(provider, policy, log)
	tryOnHandler := api.NewTryOnHandler(tryOnService, config.UploadDir, log)

	// Catalog and community are optional: without Mongo the catalog falls
	// back to the embedded default and the community endpoints report 503.
	if config.MongoURI != "" {
		if err := utils.ConnectMongo(config.MongoURI); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := utils.SeedCatalog(ctx, utils.GetCollection(config.DBName, "products")); err != nil {
			log.Warnf("Catalog seeding failed: %v", err)
		}
		cancel()
	} else {
		log.Warn("MONGO_URI not set; serving embedded catalog, community feed disabled")
	}
	if config.AWSBucketName != "" {
		if err := utils.InitS3(); err != nil {
			log.Warnf("S3 init failed, community uploads disabled: %v", err)
		}
	}

	productHandler := api.NewProductHandler(utils.GetCollection(config.DBName, "products"), log)
	communityHandler := api.NewCommunityHandler(utils.GetCollection(config.DBName, "posts"), log)
	garmentHandler := api.NewGarmentHandler(policy.Client(30*time.Second), log)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/try-on", corsMiddleware(tryOnHandler.TryOn))
	mux.HandleFunc("/api/products", corsMiddleware(productHandler.List))
	mux.HandleFunc("/api/products/{id}", corsMiddleware(productHandler.Get))
	mux.HandleFunc("/api/community/posts", corsMiddleware(communityHandler.PostsEndpoint))
	mux.HandleFunc("/api/garment-image", corsMiddleware(garmentHandler.Resolve))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	log.Infof("Server starting on port %s...", config.Port)
	if err := http.ListenAndServe(":"+config.Port, utils.LatencyMiddleware(log, mux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
