package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(nil, nil)
	require.NotNil(t, cmd)
	assert.Equal(t, "rskperm", cmd.Use)
	assert.Contains(t, cmd.Long, "hook walk")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(nil, nil)
	for _, name := range []string{"sample", "tableau", "staircase"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(nil, nil)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	for _, name := range []string{"config", "seed", "max-attempts"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestSampleCommandFlags(t *testing.T) {
	cmd := NewRootCommand(nil, nil)
	sample, _, err := cmd.Find([]string{"sample"})
	require.NoError(t, err)

	shapeFlag := sample.Flags().Lookup("shape")
	require.NotNil(t, shapeFlag)
	assert.Equal(t, "s", shapeFlag.Shorthand)

	mode := sample.Flags().Lookup("mode")
	require.NotNil(t, mode)
	assert.Equal(t, "shortcut", mode.DefValue)
	assert.NotNil(t, sample.Flags().Lookup("parallel"))
}
