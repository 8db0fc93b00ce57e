package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostCommand(t *testing.T) {
	cmd := Cost()

	require.NotNil(t, cmd)
	assert.Equal(t, "cost [cluster]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestCostCommand_Flags(t *testing.T) {
	cmd := Cost()

	require.NotNil(t, cmd.Flags().Lookup("config"))

	jsonFlag := cmd.Flags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)
}
