// Package gemini provides an implementation of the generation.Generator interface
// backed by Google's Gemini API.
//
// It is an infrastructure adapter: callers see only generation.Summary and the
// generation error sentinels, never genai types. Gemini API failures are
// translated into *generation.UpstreamError so that authentication and rate
// limit failures are classified the same way as for other providers.
//
// The package uses the google.golang.org/genai client library for
// authentication, request formatting and response decoding.
package gemini
