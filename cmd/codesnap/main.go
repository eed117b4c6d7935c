package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/keshon/codesnap/internal/cli"
	_ "github.com/keshon/codesnap/internal/command/help"
	_ "github.com/keshon/codesnap/internal/command/pack"
	_ "github.com/keshon/codesnap/internal/command/restore"
	_ "github.com/keshon/codesnap/internal/command/scan"
	_ "github.com/keshon/codesnap/internal/command/version"
	"github.com/keshon/codesnap/internal/snapshot"
)

func main() {
	// Pick up .env defaults; real environment variables win.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println("Usage: codesnap <command> [args...]")
		fmt.Println("Available commands:")
		for _, cmd := range cli.AllCommands() {
			fmt.Printf("  %s: %s\n", cmd.Name(), cmd.Brief())
		}
		os.Exit(0)
	}

	cmdName := os.Args[1]
	cmd, ok := cli.GetCommand(cmdName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmdName)
		os.Exit(1)
	}

	ctx := &cli.Context{
		Args: os.Args[2:],
	}

	if err := cmd.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, snapshot.ErrOutputExists) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
