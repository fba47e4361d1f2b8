package main

import (
	"testing"

	"github.com/jonathan/shelf-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_Names(t *testing.T) {
	cases := map[string]int{
		"want":     types.StatusWantToRead,
		"reading":  types.StatusReading,
		"finished": types.StatusFinished,
		"dnf":      types.StatusDidNotFinish,
		"FINISHED": types.StatusFinished,
		" want ":   types.StatusWantToRead,
	}
	for input, expected := range cases {
		code, err := parseStatus(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, code, "input %q", input)
	}
}

func TestParseStatus_NumericCode(t *testing.T) {
	code, err := parseStatus("3")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := parseStatus("someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "someday")
}
