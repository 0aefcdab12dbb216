package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/3-lines-studio/sweep/internal/adapters/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	output := cli.NewOutput()
	if err := newApp(ctx, output).Run(os.Args[1:]); err != nil {
		output.PrintError("%v", err)
		stop()
		os.Exit(1)
	}
}
