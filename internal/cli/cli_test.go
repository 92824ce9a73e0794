package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("SLOTLEDGER_LOG_LEVEL", "error")

	var output bytes.Buffer

	root := NewRoot()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))
	root.SetOut(&output)
	root.SetErr(&output)

	errExecute := root.Execute()

	return output.String(), errExecute
}

func TestVersion(t *testing.T) {
	output, errExecute := execute(t, "", "version")
	require.NoError(t, errExecute)
	require.Equal(t, "dev\n", output)
}

func TestShellFromStdin(t *testing.T) {
	output, errExecute := execute(t, "book user 12 14\nlist\n", "shell")
	require.NoError(t, errExecute)
	require.Equal(t, "ok\n[12 13]\n", output)
}

func TestShellFromFile(t *testing.T) {
	script := filepath.Join(t.TempDir(), "script.txt")

	require.NoError(t,
		os.WriteFile(
			script,
			[]byte("book u 9 14\ncancel other 9 14\nlist\n"),
			0o600,
		),
	)

	output, errExecute := execute(t, "", "shell", "--file", script)
	require.NoError(t, errExecute)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "ok", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "error: "))
	require.Equal(t, "[9 10 11 12 13]", lines[2])
}

func TestShellMissingFile(t *testing.T) {
	_, errExecute := execute(t, "", "shell", "--file", "missing.txt")
	require.Error(t, errExecute)
}

func TestBadConfig(t *testing.T) {
	_, errExecute := execute(t, "", "shell", "--config", "missing.yaml")
	require.Error(t, errExecute)
}

func TestScriptInput(t *testing.T) {
	t.Run(
		"1. command without file flag",
		func(t *testing.T) {
			input, closeInput, errInput := scriptInput(&cobra.Command{Use: "bare"})
			require.Error(t, errInput)
			require.Nil(t, input)
			require.Nil(t, closeInput)
		},
	)

	t.Run(
		"2. stdin when no file given",
		func(t *testing.T) {
			cmd := NewShellCmd()
			cmd.SetIn(strings.NewReader("list\n"))

			input, closeInput, errInput := scriptInput(cmd)
			require.NoError(t, errInput)
			require.NoError(t, closeInput())

			content, errRead := io.ReadAll(input)
			require.NoError(t, errRead)
			require.Equal(t, "list\n", string(content))
		},
	)
}
