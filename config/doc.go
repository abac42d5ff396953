// Package config loads client configuration for embedding applications.
//
// It uses Viper to read a YAML file and environment variables; env
// variables use the MAPKIT_ prefix with underscore-separated paths (e.g.
// MAPKIT_API_KEY, MAPKIT_RETRY_MAX_ATTEMPTS). A .env file next to the
// process is honored via godotenv.
package config
