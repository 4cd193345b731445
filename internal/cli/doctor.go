package cli

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/instyleqa/storefront-e2e/internal/browser"
	"github.com/instyleqa/storefront-e2e/internal/config"
)

// DoctorCommand returns the command that provisions driver and browser
// binaries ahead of a run, so the first test doesn't pay the download.
func DoctorCommand() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Download and verify the browser driver binaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "browser",
				Usage: "browser kind to provision (defaults to the configured one)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(os.Getenv)
			if err != nil {
				return err
			}
			if b := c.String("browser"); b != "" {
				cfg.Browser = b
			}

			log.Printf("Provisioning %s driver", cfg.Browser)
			if err := browser.Install(cfg); err != nil {
				return err
			}
			log.Printf("Driver for %s is ready", cfg.Browser)
			return nil
		},
	}
}
