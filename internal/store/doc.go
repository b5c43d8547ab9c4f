// Package store defines the storage contracts of the application and the
// errors every implementation reports. Implementations live under
// internal/platform; the in-memory one is the only backend.
package store
