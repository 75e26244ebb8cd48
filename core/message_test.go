package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessage(t *testing.T) {
	m := NewMessage(RoleUser, "hello")
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, RoleUser, m.Role)
	assert.Equal(t, "hello", m.Content)
	assert.False(t, m.HasToolCalls())
}

func TestNewToolResultMessage(t *testing.T) {
	m := NewToolResultMessage("call_1", "42")
	assert.Equal(t, RoleTool, m.Role)
	assert.Equal(t, "call_1", m.ToolCallID)
	assert.Equal(t, "42", m.Content)
}

func TestMessage_HasToolCalls(t *testing.T) {
	m := NewMessage(RoleAssistant, "")
	m.ToolCalls = []ToolCall{{ID: "call_1", Name: "calculator"}}
	assert.True(t, m.HasToolCalls())
}

func TestMessage_ContentContainsFold(t *testing.T) {
	m := NewMessage(RoleAssistant, "I will CONTINUE with the next step.")
	assert.True(t, m.ContentContainsFold("continue"))
	assert.False(t, m.ContentContainsFold("stop"))
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
