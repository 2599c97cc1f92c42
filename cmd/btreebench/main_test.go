package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = true

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--degree", "2",
		"--count", "1000",
		"--report-every", "250",
		"--verify",
		"--log-level", "warn",
	})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Contains(t, out.String(), "Execution time: 0 seconds\n")
	require.Contains(t, out.String(), "1,000 keys, height")
}

func TestRootCmdRejectsBadDegree(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--degree", "1", "--log-level", "warn"})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "degree must be at least 2")
}
