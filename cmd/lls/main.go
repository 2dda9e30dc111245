package main

import (
	"io"
	"os"

	"github.com/k0kubun/go-ansi"
	"github.com/spf13/cobra"

	"github.com/tympanix/lls/internal/config"
	"github.com/tympanix/lls/internal/logger"
	"github.com/tympanix/lls/internal/output"
	"github.com/tympanix/lls/internal/progress"
	"github.com/tympanix/lls/internal/walker"
)

var version = "dev"

const (
	exitOK      = 0
	exitFatal   = 1
	exitPartial = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.New()
	code := exitOK
	var colorMode string
	var order walker.SortOrder

	var rootCmd = &cobra.Command{
		Use:   "lls [path]",
		Short: "Display the contents of a directory in a tree format",
		Long: "Display the contents of a directory in a tree format\n\n" +
			"Exit codes:\n" +
			"  0 - Success\n" +
			"  1 - Path could not be listed or output could not be written\n" +
			"  2 - Tree printed, but some entries could not be read",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Root = args[0]
			}
			var err error
			if cfg.Color, err = config.ParseColorMode(colorMode); err != nil {
				return err
			}
			if order, err = walker.ParseSortOrder(cfg.Sort); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			code = execute(cfg, order, stdout, stderr)
			return nil
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.IncludeHidden, "all", "a", false, "Include hidden entries (names starting with '.')")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Highlight directories: auto, always, or never")
	rootCmd.Flags().StringVar(&cfg.Sort, "sort", cfg.Sort, "Sibling order: none (filesystem order), name, or dirsfirst")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Report skipped entries such as symlinks and sockets")
	rootCmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress reports of unreadable entries")
	rootCmd.Flags().BoolVar(&cfg.Progress, "progress", false, "Show a scan indicator on stderr when output is redirected")

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		logger.New(stderr).Fatalf("%v", err)
		return exitFatal
	}
	return code
}

func execute(cfg *config.Config, order walker.SortOrder, stdout, stderr io.Writer) int {
	var log logger.Logger
	if cfg.Quiet {
		log = logger.NewQuiet(stderr)
	} else if cfg.Verbose {
		log = logger.NewVerbose(stderr)
	} else {
		log = logger.New(stderr)
	}

	stdoutTTY := isTerminal(stdout)
	useColor := cfg.UseColor(stdoutTTY)
	out := stdout
	if useColor && stdout == io.Writer(os.Stdout) {
		out = ansi.NewAnsiStdout()
	}

	opts := []walker.Option{
		walker.WithOutput(out),
		walker.WithLogger(log),
		walker.WithStyler(output.NewStyler(useColor)),
		walker.WithSort(order),
	}

	var spinner *progress.Spinner
	if cfg.ShowProgress(stdoutTTY, isTerminal(stderr)) {
		spinner = progress.NewSpinner(ansi.NewAnsiStderr(), true)
		opts = append(opts, walker.WithProgress(spinner))
	}

	state, err := walker.Walk(cfg.Root, cfg.IncludeHidden, opts...)
	if spinner != nil {
		log.Verbosef("scanned %d entries", spinner.Count())
		_ = spinner.Finish()
	}
	if err != nil {
		log.Fatalf("%v", err)
		return exitFatal
	}

	if state.Errors > 0 {
		log.Verbosef("%d entries could not be read", state.Errors)
		return exitPartial
	}
	return exitOK
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && config.Isatty(f)
}
