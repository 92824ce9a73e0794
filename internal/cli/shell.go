package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/TudorHulban/slotledger"
	"github.com/TudorHulban/slotledger/internal/shell"
	"github.com/spf13/cobra"
)

// scriptInput returns the --file script when set, stdin otherwise.
// The returned close function is never nil.
func scriptInput(cmd *cobra.Command) (io.Reader, func() error, error) {
	scriptPath, errFlag := cmd.Flags().GetString("file")
	if errFlag != nil {
		return nil, nil, errFlag
	}

	if len(scriptPath) == 0 {
		return cmd.InOrStdin(),
			func() error { return nil },
			nil
	}

	f, errOpen := os.Open(scriptPath)
	if errOpen != nil {
		return nil, nil,
			fmt.Errorf("open script: %w", errOpen)
	}

	return f, f.Close, nil
}

func NewShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run booking commands from stdin or a script file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, closeInput, errInput := scriptInput(cmd)
			if errInput != nil {
				return errInput
			}
			defer closeInput() //nolint:errcheck

			_, l, errSetup := setup(cmd)
			if errSetup != nil {
				return errSetup
			}
			defer l.Sync() //nolint:errcheck

			s, errShell := shell.NewShell(
				&shell.ParamsNewShell{
					Ledger: slotledger.NewLedger(),
					Logger: l,
					Output: cmd.OutOrStdout(),
				},
			)
			if errShell != nil {
				return errShell
			}

			return s.Run(cmd.Context(), input)
		},
	}

	cmd.Flags().StringP("file", "f", "", "script file, one command per line")

	return cmd
}
