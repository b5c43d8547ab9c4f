// Package config handles configuration loading, parsing, and validation
// from the environment and an optional .env file. It provides type-safe
// access to server and client settings while keeping configuration details
// separate from business logic.
package config
