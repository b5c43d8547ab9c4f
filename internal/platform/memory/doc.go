// Package memory provides the in-process implementation of store.TodoStore.
// Nothing is persisted; state is lost when the process exits.
package memory
