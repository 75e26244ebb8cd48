package tinyagent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tinyagent/model"
	"github.com/hupe1980/tinyagent/tool"
)

func TestNew_WithMockModel(t *testing.T) {
	m := model.NewMockModel("test")
	m.EnqueueText("hello")

	a, err := New("help with tests", func(o *Options) {
		o.Model = m
		o.BuiltinTools = []tool.Tool{tool.NewCalculator()}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"calculator"}, a.ListTools())

	resp, err := a.SendMessage(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Content)
}

func TestNew_DefaultToolsSkipSearchWithoutCredential(t *testing.T) {
	t.Setenv(tool.EnvSerpAPIKey, "")

	a, err := New("help", func(o *Options) {
		o.Model = model.NewMockModel("test")
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"calculator", "fetch_website"}, a.ListTools())
}

func TestNew_DefaultToolsIncludeSearchWithCredential(t *testing.T) {
	t.Setenv(tool.EnvSerpAPIKey, "test-key")

	a, err := New("help", func(o *Options) {
		o.Model = model.NewMockModel("test")
	})
	require.NoError(t, err)

	assert.Contains(t, a.ListTools(), "search")
}

func TestNew_MissingModelCredentialFails(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := New("help")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
