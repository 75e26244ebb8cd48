// Package model defines the provider-agnostic abstractions for the remote
// chat-completion endpoint used by tinyagent.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Normalize the tool / function call wire shape (ToolDefinition)
//   - Facilitate lightweight scripting for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so the transcript and agent layers remain decoupled from vendor
// SDKs.
package model
