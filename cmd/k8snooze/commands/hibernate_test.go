package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHibernateCommand(t *testing.T) {
	cmd := Hibernate()

	require.NotNil(t, cmd)
	assert.Equal(t, "hibernate [cluster]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestHibernateCommand_Flags(t *testing.T) {
	cmd := Hibernate()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag)
	assert.Equal(t, "false", forceFlag.DefValue)
}

func TestHibernateCommand_RejectsExtraArgs(t *testing.T) {
	cmd := Hibernate()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"cluster-a", "cluster-b"})

	err := cmd.Execute()
	require.Error(t, err)
}
