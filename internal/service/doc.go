// Package service contains the application use cases. It coordinates the todo
// store, the language model generator and the chat notifier, and translates
// their failures into the service error taxonomy the API layer maps to HTTP
// responses.
//
// Services receive their dependencies through constructor injection and never
// depend on concrete infrastructure: the store, generator and notifier are all
// interfaces.
package service
