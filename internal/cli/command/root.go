package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/whitehole-go/internal/cli/config"
	"github.com/yndnr/whitehole-go/internal/cli/output"
	"github.com/yndnr/whitehole-go/internal/compat"
	"github.com/yndnr/whitehole-go/internal/core/service"
	"github.com/yndnr/whitehole-go/internal/infra/buildinfo"
	"github.com/yndnr/whitehole-go/internal/infra/shutdown"
	"github.com/yndnr/whitehole-go/internal/storage/memory"
	"github.com/yndnr/whitehole-go/internal/telemetry/logger"
	"github.com/yndnr/whitehole-go/internal/telemetry/metric"
)

const envKey = "env"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:     "whitehole",
		Usage:    "White hole VLAN registry and Windows 16 helper",
		Version:  buildinfo.String(),
		Flags:    globalFlags(),
		Metadata: make(map[string]any),
		Commands: []*cli.Command{
			RunCommand(),
			ShellCommand(),
			CapabilitiesCommand(),
			ValidateCommand(),
			ScriptCommand(),
			InspectCommand(),
		},
		Before: func(c *cli.Context) error {
			env, err := newEnv(c)
			if err != nil {
				return err
			}
			c.App.Metadata[envKey] = env
			return nil
		},
		After: func(c *cli.Context) error {
			if env := getEnv(c); env != nil {
				return env.Shutdown.Close()
			}
			return nil
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "settings",
			Usage:   "Settings file (default ~/.whitehole/settings.yaml)",
			EnvVars: []string{"WHITEHOLE_SETTINGS"},
		},
		&cli.StringFlag{
			Name:  "device-id",
			Usage: "Device identifier",
		},
		&cli.IntFlag{
			Name:  "max-vlans",
			Usage: "Highest VLAN ID the registry accepts",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics to this file on exit",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

// flagKeys maps global flags to settings keys.
var flagKeys = map[string]string{
	"device-id":    "device.id",
	"max-vlans":    "registry.max_vlans",
	"output":       "cli.output",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-file": "metrics.textfile",
	"no-color":     "cli.no_color",
}

// overrides collects the global flags that were set explicitly.
func overrides(c *cli.Context) map[string]any {
	m := make(map[string]any)
	for name, key := range flagKeys {
		if !c.IsSet(name) {
			continue
		}
		m[key] = c.Value(name)
	}
	return m
}

// Env is the per-invocation environment shared by all commands.
type Env struct {
	Settings     *config.Settings
	SettingsPath string
	Overrides    map[string]any
	RunID        string
	Log          logger.Logger
	Metrics      *metric.Registry
	Shutdown     *shutdown.Handler
	Out          *output.Printer
	Formatter    output.Formatter
	In           io.Reader
}

func newEnv(c *cli.Context) (*Env, error) {
	path := c.String("settings")
	ovr := overrides(c)

	settings, err := config.Load(path, ovr)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if path == "" {
		path = config.DefaultSettingsPath()
	}

	errOut := c.App.ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}
	log, err := logger.New(logger.Config{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		Output: errOut,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	runID := logger.NewRunID()
	log = log.WithContext(logger.WithRunID(context.Background(), runID))
	logger.SetDefault(log)

	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}
	useColor := false
	if f, ok := out.(*os.File); ok && !settings.CLI.NoColor {
		useColor = output.ShouldUseColor(f)
	}

	in := c.App.Reader
	if in == nil {
		in = os.Stdin
	}

	format, err := output.ParseFormat(settings.CLI.Output)
	if err != nil {
		return nil, err
	}

	env := &Env{
		Settings:     settings,
		SettingsPath: path,
		Overrides:    ovr,
		RunID:        runID,
		Log:          log,
		Metrics:      metric.NewRegistry(),
		Shutdown:     shutdown.NewHandler(shutdown.DefaultTimeout),
		Out:          output.NewPrinter(out, useColor),
		Formatter:    output.NewFormatter(format, false),
		In:           in,
	}

	if textfile := settings.Metrics.Textfile; textfile != "" {
		env.Shutdown.OnShutdown(func(context.Context) error {
			if err := env.Metrics.WriteTextfile(textfile); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
			log.Debug("metrics written", "path", textfile)
			return nil
		})
	}

	log.Debug("settings loaded", "settings", settings.String())
	return env, nil
}

// getEnv retrieves the environment prepared by Before.
func getEnv(c *cli.Context) *Env {
	if env, ok := c.App.Metadata[envKey].(*Env); ok {
		return env
	}
	return nil
}

// mustEnv is getEnv for actions, which only run after Before.
func mustEnv(c *cli.Context) (*Env, error) {
	env := getEnv(c)
	if env == nil {
		return nil, fmt.Errorf("command environment not initialized")
	}
	return env, nil
}

// commandContext returns a context carrying the logger and run id that is
// cancelled on SIGINT or SIGTERM.
func (e *Env) commandContext(c *cli.Context) (context.Context, context.CancelFunc) {
	parent := c.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := shutdown.WithSignals(parent)
	ctx = logger.WithLogger(ctx, e.Log)
	ctx = logger.WithRunID(ctx, e.RunID)
	return ctx, cancel
}

// newRegistry creates an empty registry sized by the settings.
func (e *Env) newRegistry() *service.RegistryService {
	store := memory.New(memory.WithMaxVLANs(e.Settings.Registry.MaxVLANs))
	return service.NewRegistryService(store, e.Settings.Device.ID,
		service.WithLogger(e.Log),
		service.WithMetrics(e.Metrics),
	)
}

// newHelper creates the Windows 16 helper for the configured device.
func (e *Env) newHelper() *compat.Helper {
	return compat.New(e.Settings.Device.ID, compat.WithLogger(e.Log))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
