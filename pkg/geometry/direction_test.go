package geometry

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"up", Up},
		{"DOWN", Down},
		{" Left ", Left},
		{"right", Right},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestParseDirectionInvalid(t *testing.T) {
	for _, input := range []string{"", "north", "upward"} {
		_, err := ParseDirection(input)
		assert.ErrorIs(t, err, ErrInvalidDirection, input)
	}
}

func TestDirectionClassification(t *testing.T) {
	tests := []struct {
		dir        Direction
		horizontal bool
		vertical   bool
		opposite   Direction
	}{
		{Up, false, true, Down},
		{Down, false, true, Up},
		{Left, true, false, Right},
		{Right, true, false, Left},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.True(t, tt.dir.IsValid())
			assert.NoError(t, tt.dir.Validate())
			assert.Equal(t, tt.horizontal, tt.dir.IsHorizontal())
			assert.Equal(t, tt.vertical, tt.dir.IsVertical())
			assert.Equal(t, tt.opposite, tt.dir.Opposite())
		})
	}
}

func TestInvalidDirection(t *testing.T) {
	for _, d := range []Direction{0, -1, 5, 42} {
		assert.False(t, d.IsValid())
		assert.False(t, d.IsHorizontal())
		assert.False(t, d.IsVertical())
		assert.Equal(t, d, d.Opposite())

		err := d.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidDirection))
	}
	assert.Equal(t, "Direction(7)", Direction(7).String())
}

func TestDirectionYAML(t *testing.T) {
	var doc struct {
		Direction Direction `yaml:"direction"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("direction: Left\n"), &doc))
	assert.Equal(t, Left, doc.Direction)

	err := yaml.Unmarshal([]byte("direction: sideways\n"), &doc)
	assert.ErrorIs(t, err, ErrInvalidDirection)

	err = yaml.Unmarshal([]byte("direction: [up]\n"), &doc)
	assert.Error(t, err)
}

func TestDirectionJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Direction{"d": Up})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"up"}`, string(data))

	var back map[string]Direction
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Up, back["d"])

	_, err = json.Marshal(Direction(0))
	assert.Error(t, err)
}
