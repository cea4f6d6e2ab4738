package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophdocs/internal/client/cli"
	"github.com/dmitrijs2005/gophdocs/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
