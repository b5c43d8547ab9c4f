// Package api handles incoming HTTP requests, request validation and response
// formatting for the todo endpoints. It acts as an adapter between HTTP
// clients and the internal services, translating service errors into status
// codes and safe messages.
package api
