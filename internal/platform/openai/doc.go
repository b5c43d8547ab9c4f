// Package openai implements generation.Generator on top of the OpenAI chat
// completions HTTP API. Any API speaking the same wire format can be used by
// pointing the base URL elsewhere.
package openai
