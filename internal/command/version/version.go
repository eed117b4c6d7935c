package version

import (
	"fmt"

	"github.com/keshon/codesnap/internal/cli"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func init() {
	cli.RegisterCommand(&Command{})
}

type Command struct{}

func (c *Command) Name() string      { return "version" }
func (c *Command) Short() string     { return "V" }
func (c *Command) Aliases() []string { return []string{"v"} }
func (c *Command) Usage() string     { return "version" }
func (c *Command) Brief() string     { return "Print the codesnap version" }
func (c *Command) Help() string      { return "Print the codesnap version." }

func (c *Command) Run(ctx *cli.Context) error {
	fmt.Println("codesnap", Version)
	return nil
}
