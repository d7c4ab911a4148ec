// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings, including the scoring and scheduling
// constants the practice pipeline is tuned with, while keeping configuration
// details separate from business logic.
package config
