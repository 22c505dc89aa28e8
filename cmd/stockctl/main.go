package main

import (
	"context"
	"log"
	"os"

	"stockroom/internal/client/cli"
	"stockroom/internal/client/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
