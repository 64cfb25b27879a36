package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis (rate limiter backend)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Object store
	BucketName      string
	BucketRegion    string
	AccessKey       string
	SecretAccessKey string
	AWSEndpoint     string
	S3UseSSL        string

	// CDN delivery layer in front of the bucket
	CDNBaseURL string

	// Cognito identity provider
	CognitoUserPoolID  string
	CognitoAppClientID string

	// Prebuilt front-end bundle
	StaticDir string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "cloudcdn"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		BucketName:      getEnv("BUCKET_NAME", "cloud-cdn-images"),
		BucketRegion:    getEnv("BUCKET_REGION", "us-east-1"),
		AccessKey:       getEnv("ACCESS_KEY", ""),
		SecretAccessKey: getEnv("SECRET_ACCESS_KEY", ""),
		AWSEndpoint:     getEnv("AWS_ENDPOINT", ""),
		S3UseSSL:        getEnv("S3_USE_SSL", "true"),

		CDNBaseURL: getEnv("CDN_BASE_URL", "https://d2o8zv9cbtpyte.cloudfront.net"),

		CognitoUserPoolID:  getEnv("COGNITO_USER_POOL_ID", ""),
		CognitoAppClientID: getEnv("COGNITO_APP_CLIENT_ID", ""),

		StaticDir: getEnv("STATIC_DIR", "./web/dist"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
