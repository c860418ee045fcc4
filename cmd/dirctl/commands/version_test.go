package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/identkit-io/dirsvc/cmd/dirctl/commands"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewVersionCommand("1.2.3", "abcdef0", "2025-06-01")

	var out bytes.Buffer
	cmd.SetOut(&out)

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "dirctl 1.2.3")
	assert.Contains(t, out.String(), "abcdef0")
	assert.Contains(t, out.String(), "2025-06-01")
}
