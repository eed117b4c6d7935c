package scan

import (
	"flag"
	"fmt"

	"github.com/keshon/codesnap/internal/cli"
	"github.com/keshon/codesnap/internal/fs"
	"github.com/keshon/codesnap/internal/snapshot"
)

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithDebugArgs()))
}

type Command struct{}

func (c *Command) Name() string      { return "scan" }
func (c *Command) Short() string     { return "s" }
func (c *Command) Aliases() []string { return []string{"dry-run"} }
func (c *Command) Usage() string     { return "scan [flags] <include-pattern>..." }
func (c *Command) Brief() string     { return "List what pack would capture, without writing" }
func (c *Command) Help() string {
	return `Run discovery and filtering and print the accepted paths plus the
metrics report. Nothing is written; use it to tune patterns before pack.

Usage:
  scan '*.go'
  scan -e 'vendor/*' '*'`
}

func (c *Command) Run(ctx *cli.Context) error {
	fset := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	var (
		root      = fset.String("C", ".", "project root to scan")
		maxBytes  = fset.Int64("m", 0, "max file size in bytes (0 = unlimited)")
		noGit     = fset.Bool("no-git", false, "skip git file listing, walk the tree")
		noIgnores = fset.Bool("no-default-ignores", false, "do not prune default-ignored directories")
	)
	var excludes cli.StringList
	fset.Var(&excludes, "e", "exclude pattern (repeatable)")

	if err := fset.Parse(ctx.Args); err != nil {
		return err
	}
	includes := fset.Args()
	if len(includes) == 0 {
		return fmt.Errorf("no include patterns supplied\nUsage: %s", c.Usage())
	}

	w := snapshot.NewWriter(fs.NewOSFS())
	accepted, metrics, err := w.Filter(snapshot.Config{
		Root:           *root,
		Include:        includes,
		Exclude:        excludes,
		Transform:      snapshot.TransformConfig{MaxFileBytes: *maxBytes},
		UseGit:         !*noGit,
		DefaultIgnores: !*noIgnores,
	})
	if err != nil {
		return err
	}

	for _, p := range accepted {
		fmt.Println(p)
	}
	if len(accepted) > 0 {
		fmt.Println()
	}
	fmt.Println(metrics.Report())
	return nil
}
