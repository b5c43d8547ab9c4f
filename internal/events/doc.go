// Package events lets the todo and summary services announce what happened
// without knowing who listens. Metrics are the main subscriber today.
//
// The primary components are:
// - Event: something that happened to a todo or a summary run
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
