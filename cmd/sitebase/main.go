// Command sitebase runs the marketing site backend.
//
// All lifecycle wiring lives in internal/app/bootstrap; WAFFLE's app.Run
// drives config loading, MongoDB connection, schema setup, the HTTP server,
// and graceful shutdown.
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"

	"github.com/sitebase-io/sitebase/internal/app/bootstrap"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
