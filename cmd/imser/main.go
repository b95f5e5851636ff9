package main

import (
	"log/slog"
	"os"

	"github.com/imser/imser/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error("imser failed", "error", err)
		os.Exit(1)
	}
}
