package config

import "os"

// GetEnv reads an environment variable. Values come from the .env file loaded
// in main via godotenv, or from the real environment in deployment.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault reads an environment variable with a fallback for local
// development. The fallback is logged by callers that care.
func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
