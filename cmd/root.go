package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Glen-Lee-glitch/blog-auto-made/config"
	"github.com/Glen-Lee-glitch/blog-auto-made/internal/report"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "blogauto",
		Usage:   "Devlog generator that turns recent Git commits into blog posts",
		Version: "1.0.0",
		Commands: []*cli.Command{
			GenerateCmd(),
			CommitsCmd(),
			ChangesCmd(),
			StatsCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Log file path (default: from config)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: setup,
		Action: defaultAction,
	}
}

// setup prepares the process-wide environment: .env loading, color mode
// and the log destination.
func setup(c *cli.Context) error {
	// A missing .env file is fine, keys may already sit in the environment.
	if err := godotenv.Load(); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}

	if c.Bool("no-color") {
		color.NoColor = true
	}

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile := firstNonEmpty(c.String("log-file"), cfg.Logging.File)
	setupLogging(logFile, c.Bool("debug") || cfg.Logging.Debug)
	return nil
}

// setupLogging mirrors every log line to stderr and, when a path is given,
// to the log file. Reports themselves go to stdout and stay clean.
func setupLogging(path string, debug bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if path == "" {
		log.SetOutput(os.Stderr)
		return
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Warnf("Cannot open log file %s, logging to stderr only: %v", path, err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
}

// commonFlags are shared by every command that reads the repository.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository (default: from config)",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to read (default: from config)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
	}
}

// reportFlags are shared by the read-only reporting commands.
func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, markdown)",
			Value:   "console",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of rows to show",
			Value:   50,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) report.Format {
	switch s {
	case "json":
		return report.FormatJSON
	case "markdown", "md":
		return report.FormatMarkdown
	default:
		return report.FormatConsole
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// defaultAction runs generate when the binary is invoked without a
// subcommand, so a bare `blogauto` writes this week's post.
func defaultAction(c *cli.Context) error {
	if c.NArg() > 0 {
		cli.ShowAppHelp(c)
		return fmt.Errorf("unknown command: %s", c.Args().First())
	}
	return generateAction(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
