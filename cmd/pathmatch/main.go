// The pathmatch command searches for directory entries with paths matching
// wildcard patterns.
//
// Example:
//
//	$ pathmatch '....go'
//	cmd/pathmatch/main.go
//	fsys.go
//	opts.go
//	pathmatch.go
//	pattern.go
//	wildcomp.go
//	wildpath.go
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/treewalk/pathmatch"
)

type options struct {
	caseSensitive bool
	absolute      bool
	dirsOnly      bool
	noColor       bool
	trace         bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "pathmatch <pattern>...",
		Short: "Find directory entries matching wildcard path patterns",
		Long: `pathmatch walks the directory tree and prints every entry whose path
matches a pattern. Within a pattern, ? matches any single character, *
matches any run of characters within one path segment, and ... (or **)
matches any run of characters across any number of segments. Matching is
case-insensitive unless --case-sensitive is given, either slash is accepted
as a separator, and a trailing separator restricts matches to directories.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.caseSensitive, "case-sensitive", "c", false, "compare literal characters case-sensitively")
	f.BoolVarP(&opts.absolute, "absolute", "a", false, "print absolute paths")
	f.BoolVarP(&opts.dirsOnly, "dirs-only", "d", false, "report directories only")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&opts.trace, "trace", false, "log walk tracing to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	dirColor := color.New(color.FgBlue, color.Bold)
	if opts.noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		dirColor.DisableColor()
	}

	mopts := []pathmatch.Option{pathmatch.CaseSensitive(opts.caseSensitive)}
	if opts.trace {
		mopts = append(mopts, pathmatch.WithTraceLogs(cmd.ErrOrStderr()))
	}
	m := pathmatch.New(mopts...)

	for _, pattern := range args {
		if opts.dirsOnly {
			pattern += "/"
		}
		err := m.Match(pattern, func(path string, d fs.DirEntry) bool {
			out := formatPath(path, opts.absolute, d.IsDir())
			if d.IsDir() {
				dirColor.Fprintln(cmd.OutOrStdout(), out)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return true
		})
		if err != nil {
			return fmt.Errorf("matching %q: %w", pattern, err)
		}
	}
	return nil
}

// formatPath renders one match for output. The engine reports paths with
// forward slashes relative to the working directory; absolute conversion
// and the trailing separator on directories are presentation concerns that
// live here.
func formatPath(path string, absolute, isDir bool) string {
	if absolute {
		if abs, err := filepath.Abs(filepath.FromSlash(path)); err == nil {
			path = filepath.ToSlash(abs)
		}
	}
	if isDir && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}
