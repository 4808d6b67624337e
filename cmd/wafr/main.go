package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/de-tools/wafr-cli/pkg/runtime/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := terminal.NewCLI(terminal.Options{
		Input:     os.Stdin,
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
