package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fetchArgs struct {
	URL     string `json:"url" description:"Address to fetch"`
	Retries *int   `json:"retries" description:"Optional retry count"`
	Note    string `json:"note,omitempty" description:"Omit empty field"`
}

func TestCreateSchema(t *testing.T) {
	schema := CreateSchema(fetchArgs{})

	props, ok := schema["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, props, "url")
	assert.Contains(t, props, "retries")
	assert.Contains(t, props, "note")

	urlProp := props["url"].(map[string]any)
	assert.Equal(t, "string", urlProp["type"])
	assert.Equal(t, "Address to fetch", urlProp["description"])

	// Required only includes non-pointer, non-omitempty exported fields.
	req, _ := schema["required"].([]string)
	assert.ElementsMatch(t, []string{"url"}, req)
}

func TestCreateSchema_NonStruct(t *testing.T) {
	schema := CreateSchema("not a struct")
	assert.Equal(t, "object", schema["type"])
	assert.Empty(t, schema["properties"])
}

func TestValidateParameters(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"n": map[string]any{"type": "integer"},
		},
		// []any mirrors the shape of a JSON decoded schema
		"required": []any{"n"},
	}

	assert.NoError(t, ValidateParameters(map[string]any{"n": 5}, schema))
	assert.NoError(t, ValidateParameters(map[string]any{"n": float64(5)}, schema))

	err := ValidateParameters(map[string]any{}, schema)
	assert.Error(t, err)
	vErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "n", vErr.Field)

	err = ValidateParameters(map[string]any{"n": "five"}, schema)
	assert.Error(t, err)
	vErr, ok = err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, vErr.Message, "expected type integer")
}

func TestValidateParameters_Enum(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"operation": map[string]any{
				"type": "string",
				"enum": []string{"add", "subtract"},
			},
		},
	}

	assert.NoError(t, ValidateParameters(map[string]any{"operation": "add"}, schema))

	err := ValidateParameters(map[string]any{"operation": "modulo"}, schema)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not one of the allowed values")
}

func TestValidateParameters_ExtraFieldsAllowed(t *testing.T) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	assert.NoError(t, ValidateParameters(map[string]any{"whatever": 1}, schema))
}
