// Package core holds the shared leaf types of tinyagent: conversation
// messages, tool call descriptors, identifier generation and the call
// limiter that bounds tool resolution. It depends on no model provider or
// tool implementation so every other package can import it freely.
package core
