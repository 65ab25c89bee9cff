package constants

// Common string constants used throughout the codebase
const (
	// Service name reported in structured logs
	ServiceName = "cyphera-expense"

	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment  = "prod"
	LocalEnvironment = "local"
	TestEnvironment  = "test"

	// Environment variables
	EnvDatabaseURL       = "DATABASE_URL"
	EnvDatabaseSecretARN = "DATABASE_URL_SECRET_ARN"
	EnvSequenceQueueURL  = "SEQUENCE_QUEUE_URL"
	EnvStage             = "STAGE"
	EnvPort              = "PORT"
	EnvCORSOrigins       = "CORS_ALLOWED_ORIGINS"

	// Default HTTP port for local runs
	DefaultPort = "8000"
)
