package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"typelint/internal/diag"
	"typelint/internal/diagfmt"
	"typelint/internal/driver"
	"typelint/internal/project"
	"typelint/internal/source"
	"typelint/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.tl|directory>",
	Short: "Run the lint rules over a file or directory",
	Long:  `Run lexing, parsing, type resolution and the lint rules over one .tl file or every .tl file under a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|json)")
	checkCmd.Flags().StringSlice("rules", nil, "rules to run (default: all)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("disk-cache", false, "enable the persistent diagnostics cache")
	checkCmd.Flags().Bool("no-warnings", false, "drop warning diagnostics from output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	rules, err := cmd.Flags().GetStringSlice("rules")
	if err != nil {
		return fmt.Errorf("failed to get rules flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	// Manifest settings fill whatever the flags left unset.
	if manifestPath, ok, err := project.FindManifest(startDirFor(path)); err == nil && ok {
		manifest, err := project.Load(manifestPath)
		if err != nil {
			return err
		}
		if len(rules) == 0 {
			rules = manifest.Lint.Rules
		}
		if format == "" {
			format = manifest.Output.Format
		}
	}
	if format == "" {
		format = "pretty"
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	opts := driver.CheckOpts{
		MaxDiagnostics: maxDiagnostics,
		Rules:          rules,
		Jobs:           jobs,
	}
	if useCache {
		cache, err := driver.OpenDiskCache("typelint")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	var fileSet *source.FileSet
	bag := diag.NewBag(maxDiagnostics)

	if info.IsDir() {
		fileSet, err = checkDirectory(cmd.Context(), path, opts, bag,
			format == "pretty" && !quiet && isTerminal(os.Stdout))
	} else {
		fileSet, err = checkSingle(path, opts, bag)
	}
	if err != nil {
		return err
	}

	bag.Sort()
	bag.Dedup()
	if noWarnings {
		dropWarnings(bag, maxDiagnostics)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "json":
		err = diagfmt.JSON(cmd.OutOrStdout(), bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     true,
		})
	default:
		diagfmt.Pretty(cmd.OutOrStdout(), bag, fileSet, diagfmt.PrettyOpts{
			Color:     colorEnabled(colorMode),
			PathMode:  pathMode,
			ShowNotes: true,
		})
	}
	if err != nil {
		return err
	}

	if bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func checkSingle(path string, opts driver.CheckOpts, bag *diag.Bag) (*source.FileSet, error) {
	fileSet := source.NewFileSet()
	fileSet.SetBaseDir(filepath.Dir(path))
	fileID, err := fileSet.Load(path)
	if err != nil {
		return nil, err
	}
	result, err := driver.CheckFile(fileSet, fileID, opts)
	if err != nil {
		return nil, err
	}
	bag.Merge(result.Bag)
	return fileSet, nil
}

func checkDirectory(ctx context.Context, dir string, opts driver.CheckOpts, bag *diag.Bag, showProgress bool) (*source.FileSet, error) {
	var events chan ui.Event
	var progDone chan struct{}

	if showProgress {
		files, err := driver.ListFiles(dir)
		if err != nil {
			return nil, err
		}
		if len(files) > 0 {
			events = make(chan ui.Event, len(files))
			progDone = make(chan struct{})
			prog := tea.NewProgram(ui.NewProgressModel("typelint check", files, events))
			go func() {
				defer close(progDone)
				_, _ = prog.Run()
			}()
			opts.OnFile = func(path string) {
				events <- ui.Event{File: path, Status: ui.StatusDone}
			}
		}
	}

	fileSet, results, err := driver.CheckDir(ctx, dir, opts)
	if events != nil {
		close(events)
		<-progDone
	}
	if err != nil {
		return nil, err
	}
	for _, result := range results {
		bag.Merge(result.Bag)
	}
	return fileSet, nil
}

// dropWarnings rebuilds the bag with warnings removed.
func dropWarnings(bag *diag.Bag, maxDiagnostics int) {
	kept := diag.NewBag(maxDiagnostics)
	for _, d := range bag.Items() {
		if d.Severity == diag.SevWarning {
			continue
		}
		kept.Add(d)
	}
	*bag = *kept
}

// startDirFor locates where a manifest search should begin.
func startDirFor(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
