package cli

import (
	"fmt"
	"os"
)

// WithDebugArgs prints the raw command arguments when CODESNAP_DEBUG is set
func WithDebugArgs() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *Context) error {
				if os.Getenv("CODESNAP_DEBUG") != "" {
					fmt.Fprintf(os.Stderr, "Args: %+v\n", ctx.Args)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
