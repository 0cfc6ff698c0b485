package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set to run the server")

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	MongoURI        string // Connection string for the maze store
	DBName          string // Name of the database
	RedisAddr       string // Address of the Redis server backing the batch queue
	QueuePrefix     string // Key prefix for the batch queue
	BatchSize       int    // Number of queued mazes solved together
	QueueTTLSeconds int    // Expiration of an idle batch queue
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	MazeFile        string // Default input for the solve command
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		MongoURI:        getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:          getEnvWithDefault("DB_NAME", "jumpmaze"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		QueuePrefix:     getEnvWithDefault("QUEUE_PREFIX", "jumpmaze"),
		BatchSize:       getEnvAsIntWithDefault("BATCH_SIZE", 4),
		QueueTTLSeconds: getEnvAsIntWithDefault("QUEUE_TTL_SECONDS", 3600),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-jumpmaze"),
		MazeFile:        getEnvWithDefault("MAZE_FILE", "test.txt"),
	}
}

// ValidateServer checks the settings the HTTP server cannot start without.
func (c Config) ValidateServer() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
