package pack

import (
	"flag"
	"fmt"

	"github.com/keshon/codesnap/internal/cli"
	"github.com/keshon/codesnap/internal/config"
	"github.com/keshon/codesnap/internal/fs"
	"github.com/keshon/codesnap/internal/snapshot"
	"github.com/keshon/codesnap/internal/util"
)

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithDebugArgs()))
}

type Command struct{}

func (c *Command) Name() string      { return "pack" }
func (c *Command) Short() string     { return "p" }
func (c *Command) Aliases() []string { return []string{"snap"} }
func (c *Command) Usage() string     { return "pack [flags] <include-pattern>..." }
func (c *Command) Brief() string     { return "Capture matching files into a snapshot artifact" }
func (c *Command) Help() string {
	return `Capture a filtered set of text files into one snapshot artifact
(or a numbered split sequence of them).

Usage:
  pack '*.go'                      - snapshot all Go files
  pack -e '*_test.go' '*.go'       - same, excluding tests
  pack -r -b '*'                   - strip comments and blank lines
  pack -t '*'                      - tree-only listing, no content
  pack -s 50 -o ctx.txt '*'        - at most 50 files per artifact

Patterns: a leading / anchors a pattern to the scan root (exact path),
anything else is a glob where ** degrades to *. A glob without a slash
matches basenames, with a slash the whole relative path.`
}

func (c *Command) Run(ctx *cli.Context) error {
	osfs := fs.NewOSFS()
	settings := config.Load(osfs)

	fset := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	var (
		output     = fset.String("o", settings.Output, "output artifact path")
		root       = fset.String("C", ".", "project root to scan")
		strip      = fset.Bool("r", false, "strip comments")
		blank      = fset.Bool("b", false, "strip blank lines")
		maxBytes   = fset.Int64("m", 0, "max file size in bytes (0 = unlimited)")
		treeOnly   = fset.Bool("t", false, "tree-only: emit path lines, no content")
		split      = fset.Int("s", settings.Split, "max files per artifact (0 = single artifact)")
		force      = fset.Bool("f", false, "overwrite an existing output artifact")
		jobs       = fset.Int("j", settings.Jobs, "transform workers (0 = NumCPU)")
		noGit      = fset.Bool("no-git", false, "skip git file listing, walk the tree")
		noIgnores  = fset.Bool("no-default-ignores", false, "do not prune default-ignored directories")
		reportPath = fset.String("report", "", "also write the metrics as JSON to this path")
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

	w := snapshot.NewWriter(osfs)
	metrics, err := w.Write(snapshot.Config{
		Root:    *root,
		Include: includes,
		Exclude: excludes,
		Transform: snapshot.TransformConfig{
			StripComments:   *strip,
			StripBlankLines: *blank,
			MaxFileBytes:    *maxBytes,
			TreeOnly:        *treeOnly,
		},
		Split:          *split,
		Output:         *output,
		Force:          *force,
		UseGit:         !*noGit,
		DefaultIgnores: !*noIgnores,
		Jobs:           *jobs,
	})
	if err != nil {
		return err
	}

	fmt.Println(metrics.Report())

	if *reportPath != "" {
		if err := util.WriteJSON(osfs, *reportPath, metrics); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
