package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quiver/internal/diagfmt"
	"quiver/internal/driver"
	"quiver/internal/project"
	"quiver/internal/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] paths...",
	Short: "Validate diagram files",
	Long:  `Check validates diagram files and reports structural problems; the exit code is non-zero when any file fails`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers (default GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "skip the validation outcome cache")
	checkCmd.Flags().Bool("json", false, "emit markers as JSON")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	asJSON, _ := cmd.Flags().GetBool("json")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	manifest, _, err := project.Load(".")
	if err != nil {
		return err
	}
	cfg := manifest.Config
	if jobs <= 0 {
		jobs = cfg.Check.Jobs
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && cfg.Check.MaxDiagnostics > 0 {
		maxDiagnostics = cfg.Check.MaxDiagnostics
	}

	var cache *validate.DiskCache
	if cfg.Check.Cache && !noCache {
		// Недоступный кеш не мешает проверке.
		cache, _ = validate.OpenDiskCache("quiver")
	}

	results, err := driver.CheckPaths(cmd.Context(), args, driver.CheckOptions{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Cache:          cache,
	})
	if err != nil {
		return err
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	}
	failed := 0
	warned := 0
	for _, res := range results {
		res.Bag.Dedup()
		res.Bag.Sort()
		switch {
		case res.Bag.HasErrors():
			failed++
		case res.Bag.HasWarnings():
			warned++
		}
		if res.Bag.Len() == 0 {
			continue
		}
		if asJSON {
			if err := diagfmt.MarkersJSON(os.Stdout, res.Path, res.Bag, diagfmt.JSONOpts{}); err != nil {
				return err
			}
			continue
		}
		diagfmt.Pretty(os.Stderr, res.File, res.Bag, prettyOpts)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet && !asJSON {
		summary := fmt.Sprintf("checked %d file(s), %d failed", len(results), failed)
		if warned > 0 {
			summary += fmt.Sprintf(", %d with warnings", warned)
		}
		fmt.Fprintln(os.Stderr, summary)
	}
	if failed > 0 {
		return fmt.Errorf("check: %d file(s) failed", failed)
	}
	return nil
}
