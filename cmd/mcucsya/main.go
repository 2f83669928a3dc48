// Command mcucsya runs the association portal and its maintenance tasks.
//
//	mcucsya serve
//	mcucsya validate --form registration --file record.json
//	mcucsya migrate
//
// Settings come from the environment (and a .env file when present).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "mcucsya",
		Usage:                 "Machakos County Students and Youths Association portal",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			serveCmd(),
			validateCmd(),
			migrateCmd(),
		},
	}
}
