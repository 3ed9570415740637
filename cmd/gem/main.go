package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/AlexZinkM/gem/docs"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gem: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gem",
		Short:         "Monero gift card generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand(), newCardCommand())
	return cmd
}
