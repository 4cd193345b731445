package cli

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/instyleqa/storefront-e2e/internal/config"
	"github.com/instyleqa/storefront-e2e/internal/report"
)

// RunOptions carries the resolved flags of the run command.
type RunOptions struct {
	Browser   string
	Headless  bool
	Category  string
	Parallel  int
	RunFilter string
	Report    string
	Artifacts string
	Timeout   time.Duration
}

// RunCommand returns the command that executes the e2e suites.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Execute the e2e suites against the storefront",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "browser",
				Value: config.BrowserChromium,
				Usage: "browser kind (chromium or firefox)",
			},
			&cli.BoolFlag{
				Name:  "headless",
				Value: true,
				Usage: "run the browser without a visible UI",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "only run tests in this category (smoke, regression, feature)",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Value: 1,
				Usage: "number of tests running in parallel",
			},
			&cli.StringFlag{
				Name:  "run",
				Usage: "regexp filter on test names, passed through to the test runner",
			},
			&cli.StringFlag{
				Name:  "report",
				Value: "reports/e2e.html",
				Usage: "path of the HTML report; empty disables it",
			},
			&cli.StringFlag{
				Name:  "artifacts",
				Value: "screenshots",
				Usage: "directory for failure screenshots",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 30 * time.Minute,
				Usage: "overall run timeout",
			},
		},
		Action: func(c *cli.Context) error {
			return Run(RunOptions{
				Browser:   c.String("browser"),
				Headless:  c.Bool("headless"),
				Category:  c.String("category"),
				Parallel:  c.Int("parallel"),
				RunFilter: c.String("run"),
				Report:    c.String("report"),
				Artifacts: c.String("artifacts"),
				Timeout:   c.Duration("timeout"),
			})
		},
	}
}

// Run invokes the test runner over the e2e package, collects its -json event
// stream and produces the console and HTML reports. The exit code is zero
// iff every selected test passed.
func Run(opts RunOptions) error {
	cmd := exec.Command("go", testArgs(opts)...)
	cmd.Env = append(os.Environ(), testEnv(opts)...)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to attach to test runner output: %w", err)
	}

	log.Printf("Running e2e suites: browser=%s headless=%t category=%q parallel=%d",
		opts.Browser, opts.Headless, opts.Category, opts.Parallel)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start test runner: %w", err)
	}

	collector := report.NewCollector()
	if err := collector.Read(stdout); err != nil {
		log.Printf("Warning: truncated test output: %v", err)
	}
	runErr := cmd.Wait()

	summary := collector.Summary()
	report.RenderTable(os.Stdout, summary)

	if opts.Report != "" {
		if err := report.WriteHTML(opts.Report, summary); err != nil {
			return err
		}
		log.Printf("HTML report written to %s", opts.Report)
	}

	if summary.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d tests failed", summary.Failed, summary.Total()), 1)
	}
	// A failing exit without failed tests means the run never got going,
	// e.g. a driver initialization failure.
	if runErr != nil {
		return cli.Exit(fmt.Sprintf("test run aborted: %v", runErr), 1)
	}
	return nil
}

// testArgs builds the go test invocation for the selected options.
func testArgs(opts RunOptions) []string {
	args := []string{
		"test", "./e2e",
		"-json",
		"-count=1",
		"-timeout", opts.Timeout.String(),
		"-parallel", strconv.Itoa(opts.Parallel),
	}
	if opts.RunFilter != "" {
		args = append(args, "-run", opts.RunFilter)
	}
	return args
}

// testEnv translates run options into the environment the suites read.
func testEnv(opts RunOptions) []string {
	return []string{
		"E2E_BROWSER=" + opts.Browser,
		"E2E_HEADLESS=" + strconv.FormatBool(opts.Headless),
		"E2E_CATEGORY=" + opts.Category,
		"E2E_SCREENSHOT_DIR=" + opts.Artifacts,
	}
}
