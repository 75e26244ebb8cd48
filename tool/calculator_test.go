package tool

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Operations(t *testing.T) {
	calc := NewCalculator()
	ctx := context.Background()

	tests := []struct {
		name string
		args string
		want string
	}{
		{"add", `{"operation":"add","a":2,"b":3}`, "5"},
		{"multiply", `{"operation":"multiply","a":25,"b":13}`, "325"},
		{"divide", `{"operation":"divide","a":10,"b":4}`, "2.5"},
		{
			"subtract floating",
			`{"operation":"subtract","a":5,"b":5.2}`,
			strconv.FormatFloat(5-5.2, 'f', -1, 64),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Execute(ctx, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_DivisionByZero(t *testing.T) {
	calc := NewCalculator()

	got, err := calc.Execute(context.Background(), `{"operation":"divide","a":10,"b":0}`)
	require.NoError(t, err)
	assert.Equal(t, "Error: Division by zero", got)
}

func TestCalculator_UnknownOperation(t *testing.T) {
	calc := NewCalculator()

	got, err := calc.Execute(context.Background(), `{"operation":"modulo","a":10,"b":3}`)
	require.NoError(t, err)
	assert.Equal(t, "Error: Unknown operation modulo", got)
}

func TestCalculator_MalformedArguments(t *testing.T) {
	calc := NewCalculator()
	ctx := context.Background()

	for _, args := range []string{
		`{not json`,
		`{"operation":"add","a":1}`, // missing b
		`{}`,
	} {
		got, err := calc.Execute(ctx, args)
		require.NoError(t, err)
		assert.True(t, len(got) >= 6 && got[:6] == "Error:", "payload %q should start with Error:", got)
	}
}

func TestCalculator_Descriptor(t *testing.T) {
	calc := NewCalculator()

	assert.Equal(t, "calculator", calc.Name())
	assert.NotEmpty(t, calc.Description())

	params := calc.Parameters()
	assert.Equal(t, "object", params["type"])
	props := params["properties"].(map[string]any)
	assert.Contains(t, props, "operation")
	assert.Contains(t, props, "a")
	assert.Contains(t, props, "b")
}
