package main

import (
	"context"
	"log"
	"os"

	"github.com/akimenko/userdesk/internal/buildinfo"
	"github.com/akimenko/userdesk/internal/console/cli"
	"github.com/akimenko/userdesk/internal/console/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}

	err = app.Run(ctx)
	_ = app.Close()
	if err != nil {
		log.Fatalf("%v", err)
	}

}
