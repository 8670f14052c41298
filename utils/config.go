package utils

import "os"

// Getenv returns the value of the environment variable or the fallback when
// it is unset or empty.
func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
