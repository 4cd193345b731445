package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/instyleqa/storefront-e2e/internal/cli"
)

var version = "0.1.0"

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "storefront-e2e",
		Usage:   "E2E test runner for the Instyle Kenya storefront",
		Version: version,
		Commands: []*cli.Command{
			internalcli.RunCommand(),
			internalcli.DoctorCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
