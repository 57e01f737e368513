package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "storefront",
		Usage: "browse products, manage the cart and hand orders off to WhatsApp",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to storefront.toml",
				Sources: cli.EnvVars("STOREFRONT_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			productsCommand(),
			cartCommand(),
			quoteCommand(),
			checkoutCommand(),
		},
	}
}
