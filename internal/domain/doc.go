// Package domain contains the core entities of the todo application and the
// validation errors shared by every layer above it. It has no knowledge of
// storage, HTTP or the external services used for summaries.
package domain
