package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quiver/internal/lsp"
	"quiver/internal/project"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the diagram language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	manifest, _, err := project.Load(".")
	if err != nil {
		return err
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Config.Check.MaxDiagnostics > 0 {
		maxDiagnostics = manifest.Config.Check.MaxDiagnostics
	}

	server := lsp.NewServer(os.Stdin, os.Stdout, lsp.ServerOptions{
		Debounce:       manifest.Config.Debounce(),
		MaxDiagnostics: maxDiagnostics,
	})
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
