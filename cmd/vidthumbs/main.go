package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vidfriends/vidthumbs/internal/app"
)

func main() {
	ctx := context.Background()
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		slog.Error("vidthumbs exited", "error", err)
		os.Exit(1)
	}
}
