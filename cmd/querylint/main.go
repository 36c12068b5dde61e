package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"
	"github.com/dotcommander/querylint/cmd"
	"github.com/dotcommander/querylint/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := fang.Execute(ctx, cmd.RootCmd,
		fang.WithVersion(version.Version),
		fang.WithCommit(version.Commit),
	)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
