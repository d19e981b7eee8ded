package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferovinum/frontend/server"
	"github.com/urfave/cli/v2"
)

type runFunc func(ctx context.Context, addr string, port uint) error

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	app := newApp(server.Run)
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func newApp(run runFunc) *cli.App {
	var bindPort uint = 3000
	var bindAddr string

	app := cli.NewApp()
	app.Name = "frontend"
	app.Usage = "Serve the Ferovinum frontend greeting"
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "address",
			Usage:       "Address to bind the server, empty means all interfaces",
			Destination: &bindAddr,
			Value:       bindAddr,
			EnvVars:     []string{"BIND_ADDR"},
		},
		&cli.UintFlag{
			Name:        "port",
			Usage:       "Port to bind the server",
			EnvVars:     []string{"PORT"},
			Destination: &bindPort,
			Value:       bindPort,
		},
	}
	app.Action = func(ctx *cli.Context) error {
		return run(ctx.Context, bindAddr, bindPort)
	}
	return app
}
