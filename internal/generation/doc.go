// Package generation defines the boundary between the application and the
// external language model used to write todo summaries. Implementations live
// in internal/platform/openai and internal/platform/gemini; the errors here
// let callers tell credential, throttling, timeout and payload problems apart
// without knowing which provider produced them.
package generation
