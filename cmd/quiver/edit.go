package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"quiver/internal/format"
	"quiver/internal/live"
	"quiver/internal/project"
	"quiver/internal/ui"
)

var editCmd = &cobra.Command{
	Use:          "edit [file.mmd]",
	Short:        "Edit a diagram in the terminal with live validation",
	SilenceUsage: true,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	manifest, _, err := project.Load(".")
	if err != nil {
		return err
	}
	cfg := manifest.Config

	path := ""
	content := ""
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		content = string(data)
	}

	return ui.RunEditor(ui.EditorOptions{
		Path:    path,
		Content: content,
		Live: live.Options{
			Debounce: cfg.Debounce(),
			BaseCtx:  cmd.Context(),
		},
		Format: format.Options{
			IndentWidth: cfg.Format.IndentWidth,
			UseTabs:     cfg.Format.UseTabs,
		},
	})
}
