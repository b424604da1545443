package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quiver/internal/driver"
	"quiver/internal/format"
	"quiver/internal/project"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] paths...",
	Short: "Reindent diagram files",
	Long:  `Fmt rewrites the indentation of diagram files in place; line content is never changed`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that would change, modify nothing")
	fmtCmd.Flags().Bool("stdout", false, "print formatted content instead of rewriting files")
	fmtCmd.Flags().Int("indent", 0, "indent width (default from quiver.toml or 4)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, _ := cmd.Flags().GetBool("check")
	stdout, _ := cmd.Flags().GetBool("stdout")
	indent, _ := cmd.Flags().GetInt("indent")

	manifest, _, err := project.Load(".")
	if err != nil {
		return err
	}
	cfg := manifest.Config
	if indent > 0 {
		cfg.Format.IndentWidth = indent
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:  check,
		Stdout: stdout,
		Options: format.Options{
			IndentWidth: cfg.Format.IndentWidth,
			UseTabs:     cfg.Format.UseTabs,
		},
	})
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	changed := 0
	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
		case stdout:
			os.Stdout.Write(res.Formatted)
		case res.Changed:
			changed++
			if !quiet {
				fmt.Println(res.Path)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("fmt: %d file(s) failed", failed)
	}
	if check && changed > 0 {
		return fmt.Errorf("fmt: %d file(s) would change", changed)
	}
	return nil
}
