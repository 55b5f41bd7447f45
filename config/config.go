package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port              string
	Env               string
	HTTPSProxy        string
	UploadDir         string
	TryOnProvider     string
	ReplicateAPIToken string
	GeminiAPIKey      string
	MongoURI          string
	DBName            string
	AWSRegion         string
	AWSBucketName     string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "3001"
	}

	Env = os.Getenv("APP_ENV")

	HTTPSProxy = os.Getenv("HTTPS_PROXY")
	if HTTPSProxy == "" {
		HTTPSProxy = "http://127.0.0.1:7897"
	}

	// Render and friends only allow writes under /tmp.
	UploadDir = os.Getenv("UPLOAD_DIR")
	if UploadDir == "" {
		if IsProduction() {
			UploadDir = "/tmp"
		} else {
			UploadDir = "uploads"
		}
	}

	TryOnProvider = os.Getenv("TRYON_PROVIDER")
	if TryOnProvider == "" {
		TryOnProvider = "replicate"
	}

	ReplicateAPIToken = os.Getenv("REPLICATE_API_TOKEN")
	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	MongoURI = os.Getenv("MONGO_URI")

	DBName = os.Getenv("DB_NAME")
	if DBName == "" {
		DBName = "soiemaison"
	}

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "ap-south-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")
}

// IsProduction reports whether the server runs in a production deployment.
func IsProduction() bool {
	return Env == "production"
}
