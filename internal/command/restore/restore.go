package restore

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/keshon/codesnap/internal/cli"
	"github.com/keshon/codesnap/internal/fs"
	"github.com/keshon/codesnap/internal/rebuild"
)

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&Command{}, cli.WithDebugArgs()))
}

type Command struct{}

func (c *Command) Name() string      { return "restore" }
func (c *Command) Short() string     { return "r" }
func (c *Command) Aliases() []string { return []string{"unpack", "rebuild"} }
func (c *Command) Usage() string     { return "restore [flags] <snapshot>..." }
func (c *Command) Brief() string     { return "Materialize files from snapshot artifacts" }
func (c *Command) Help() string {
	return `Rebuild a file tree from one or more snapshot artifacts. Multiple
artifacts are parsed as one continuous stream, so a split sequence can be
passed in order.

Usage:
  restore snapshot.txt                - rebuild under the current directory
  restore -C out snap.txt snap-2.txt  - rebuild a split sequence under out/
  restore -f snapshot.txt             - overwrite existing files
  restore -diff snapshot.txt          - show diffs for skipped existing files

Existing files are skipped unless -f is given. Malformed input lines are
counted and reported, never fatal.`
}

func (c *Command) Run(ctx *cli.Context) error {
	fset := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	var (
		root  = fset.String("C", ".", "build root to rebuild under")
		force = fset.Bool("f", false, "overwrite existing files")
		diff  = fset.Bool("diff", false, "print a unified diff for skipped files that differ")
	)
	if err := fset.Parse(ctx.Args); err != nil {
		return err
	}
	inputs := fset.Args()
	if len(inputs) == 0 {
		return fmt.Errorf("no snapshot files supplied\nUsage: %s", c.Usage())
	}

	osfs := fs.NewOSFS()
	if !osfs.IsDir(*root) {
		return fmt.Errorf("build root %q is not a directory", *root)
	}

	opts := rebuild.Options{Force: *force}
	if *diff {
		opts.DiffOut = os.Stdout
	}
	rb := rebuild.NewRebuilder(osfs, *root, opts)
	parser := rebuild.NewParser(rb)

	// All artifacts feed one parser, so state survives file boundaries.
	readers := make([]io.Reader, 0, len(inputs))
	closers := make([]io.Closer, 0, len(inputs))
	defer func() {
		for _, cl := range closers {
			cl.Close()
		}
	}()
	for _, in := range inputs {
		f, err := osfs.Open(in)
		if err != nil {
			return fmt.Errorf("open snapshot %q: %w", in, err)
		}
		readers = append(readers, f)
		closers = append(closers, f)
	}

	if err := parser.Consume(io.MultiReader(readers...)); err != nil {
		return fmt.Errorf("read snapshot stream: %w", err)
	}

	fmt.Println(parser.Finish().Report())
	return nil
}
