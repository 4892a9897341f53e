// Command server runs the community API server: HTTP routes, the
// notification WebSocket stream, and startup migrations.
//
// Configuration comes from CONFIG_PATH (YAML) or environment variables.
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ip9202/jeju-tourlist-sub007/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
