package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/eugenenazirov/krcalendar/internal/application"
	"github.com/eugenenazirov/krcalendar/internal/config"
	"github.com/eugenenazirov/krcalendar/internal/logging"
)

// command is the parsed command line.
type command struct {
	name      string
	overrides *config.CLIOverrides
	year      int
	month     int
	years     []int
}

func main() {
	cmd, err := parseArgs(os.Args[1:])
	kingpin.FatalIfError(err, "invalid arguments")

	cfg, err := config.Load(cmd.overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	color := cfg.UseColor(term.IsTerminal(int(os.Stdout.Fd())))
	app := application.New(cfg, logger, application.WithColor(color))

	if err := run(cmd, app, cfg, os.Stdout, logger); err != nil {
		logger.Fatal("command failed", zap.String("command", cmd.name), zap.Error(err))
	}
}

func parseArgs(args []string) (command, error) {
	kingpinApp := kingpin.New("krcalendar", "Monthly console calendar with South Korean public holidays")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	envFile := kingpinApp.Flag("env-file", "Path to a dotenv file (default: .env if present)").String()
	weekStart := kingpinApp.Flag("week-start", "First day of the week (sunday|monday)").String()
	color := kingpinApp.Flag("color", "Colour output (auto|always|never)").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug|info|warn|error)").String()

	showCmd := kingpinApp.Command("show", "Print a month calendar").Default()
	year := showCmd.Flag("year", "Calendar year (default: current year)").Int()
	month := showCmd.Flag("month", "Calendar month 1-12 (default: current month)").Int()

	holidaysCmd := kingpinApp.Command("holidays", "List the holidays of one or more years")
	years := holidaysCmd.Flag("year", "Year to list, repeatable (default: current year)").Ints()

	trayCmd := kingpinApp.Command("tray", "Run in the system tray")

	selected, err := kingpinApp.Parse(args)
	if err != nil {
		return command{}, err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
	}
	if *weekStart != "" {
		overrides.WeekStart = weekStart
	}
	if *color != "" {
		overrides.Color = color
	}
	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cmd := command{name: selected, overrides: overrides}
	switch selected {
	case showCmd.FullCommand():
		cmd.year, cmd.month = *year, *month
	case holidaysCmd.FullCommand():
		cmd.years = *years
	case trayCmd.FullCommand():
	}
	return cmd, nil
}

func run(cmd command, app *application.App, cfg config.Config, out io.Writer, logger *zap.Logger) error {
	switch cmd.name {
	case "holidays":
		years := cmd.years
		if len(years) == 0 {
			years = []int{app.Now().Year()}
		}
		return app.WriteHolidays(out, years...)
	case "tray":
		return runTray(app, cfg, out, logger)
	default:
		year, month := resolveMonth(app.Now(), cmd.year, cmd.month)
		return app.WriteMonth(out, year, month)
	}
}

// resolveMonth fills unset year and month from now.
func resolveMonth(now time.Time, year, month int) (int, int) {
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}
