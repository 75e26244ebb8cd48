// Package agent contains the conversational agent that orchestrates a
// transcript and a tool registry into the resolve-tool-calls state machine.
//
// Execution model:
//   - SendMessage appends a user message and alternates between requesting
//     a completion and resolving the tool calls it carries, until the model
//     answers in plain text or the bounded round limit trips
//   - Tool failures are isolated per call: lookup misses, expected errors
//     and panics all degrade into "Error: ..." tool output the model can
//     react to
//   - Run layers a turn budget with a pluggable continuation policy on top
//     of SendMessage
//
// The package intentionally keeps provider specifics, tool implementations
// and transcript bookkeeping in their respective packages to avoid cyclic
// deps.
package agent
