package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "slotledger",
		Short:         "Hourly room booking ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "path to slotledger.yaml")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewShellCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(Version)

			return nil
		},
	}
}
