package command

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yndnr/whitehole-go/internal/cli/config"
	"github.com/yndnr/whitehole-go/internal/cli/menu"
	"github.com/yndnr/whitehole-go/internal/cli/output"
	"github.com/yndnr/whitehole-go/internal/compat"
	"github.com/yndnr/whitehole-go/internal/core/domain"
	"github.com/yndnr/whitehole-go/internal/core/service"
	"github.com/yndnr/whitehole-go/internal/infra/confloader"
	"github.com/yndnr/whitehole-go/internal/telemetry/logger"
)

// SystemVersion is stored as system metadata during initialization.
const SystemVersion = "1.0.0"

// StorageType is stored as system metadata during initialization.
const StorageType = "gigatic_white_hole"

// essentialVLANs are created before the Windows 16 range.
var essentialVLANs = []struct {
	ID          int
	Name        string
	Description string
}{
	{1, "Management-VLAN", "Primary management network for device 81"},
	{10, "Data-VLAN", "Data transfer network"},
	{100, "Voice-VLAN", "Voice communication network"},
	{200, "Storage-VLAN", "White hole storage access network"},
}

var numbers = message.NewPrinter(language.English)

// RunCommand returns the run command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Initialize the storage system and optionally open the management menu",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Open the management menu after initialization",
			},
			&cli.StringFlag{
				Name:  "device-config",
				Usage: "Device configuration file (JSON or YAML)",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Export file written after initialization",
			},
			&cli.StringFlag{
				Name:  "script",
				Usage: "PowerShell helper script path",
			},
			&cli.IntFlag{
				Name:  "win16-start",
				Usage: "First Windows 16 VLAN ID",
			},
			&cli.IntFlag{
				Name:  "win16-count",
				Usage: "Number of Windows 16 VLANs to create",
			},
		},
		Action: runInit,
	}
}

func runInit(c *cli.Context) error {
	env, err := mustEnv(c)
	if err != nil {
		return err
	}
	ctx, cancel := env.commandContext(c)
	defer cancel()

	s := env.Settings
	devicePath := stringFlag(c, "device-config", s.Device.ConfigFile)
	exportPath := stringFlag(c, "export", s.Registry.ExportFile)
	scriptPath := stringFlag(c, "script", s.Compat.ScriptFile)
	start := intFlag(c, "win16-start", s.Compat.BulkStart)
	count := intFlag(c, "win16-count", s.Compat.BulkCount)

	p := env.Out
	p.Banner(
		"GIGATIC WHITE HOLE INTERNAL STORAGE SYSTEM",
		"for "+s.Device.ID,
		numbers.Sprintf("with %d VLAN Windows 16 Support", s.Registry.MaxVLANs),
	)
	p.Println("")

	p.Section("Step 1: Loading Device Configuration")
	device := loadDevice(ctx, env, devicePath)
	p.Println("")

	p.Section("Step 2: Initializing White Hole Storage")
	registry := env.newRegistry()
	stats := registry.Stats(ctx)
	p.Println("  Storage Capacity: %s", stats.StorageCapacity)
	p.Println("  Total VLANs Supported: %s", numbers.Sprintf("%d", stats.TotalVLANsSupported))
	p.Println("  Windows 16 Support: %t", stats.Windows16Support)
	p.Println("  Status: %s", stats.Status)
	p.Println("")

	p.Section("Step 3: Initializing Windows 16 Helper Services")
	helper := env.newHelper()
	if err := helper.Initialize(ctx); err != nil {
		return err
	}
	caps := helper.Capabilities()
	p.Println("  Version: %s", caps.Version)
	for _, svc := range caps.Services {
		p.OK("%s started", svc)
	}
	p.Println("")

	p.Section("Step 4: Validating Windows 16 Configuration")
	switch {
	case device == nil:
		p.Warn("Skipping validation (no config file)")
	case helper.ValidateConfig(device.Raw) == nil:
		p.OK("Windows 16 configuration is valid")
	default:
		p.Warn("Windows 16 configuration validation failed")
	}
	p.Println("")

	p.Section("Step 5: Creating Essential VLANs")
	for _, v := range essentialVLANs {
		if err := registry.CreateVLAN(ctx, v.ID, v.Name, v.Description); err != nil {
			p.Warn("Failed to create VLAN %d", v.ID)
			continue
		}
		p.OK("Created VLAN %d: %s", v.ID, v.Name)
	}
	p.Println("")

	p.Section("Step 6: Creating Windows 16 Optimized VLANs")
	created := helper.BulkCreate(ctx, registry, start, count)
	env.Metrics.AddBulk("win16", created)
	p.OK("Created %d Windows 16 optimized VLANs", created)
	p.Println("")

	p.Section("Step 7: Storing System Metadata")
	for _, item := range systemMetadata(s.Device.ID, registry.MaxVLANs()) {
		registry.StoreValue(ctx, item.key, item.value)
		p.OK("Stored: %s = %v", item.key, item.value)
	}
	p.Println("")

	p.Section("Step 8: Creating Windows 16 Helper Script")
	if err := helper.WriteScript(scriptPath); err != nil {
		logger.L(ctx).Warn("write helper script failed", "path", scriptPath, "error", err)
		p.Warn("Failed to create helper script")
	} else {
		p.OK("PowerShell helper script created: %s", scriptPath)
	}
	p.Println("")

	p.Section("Step 9: Exporting System Configuration")
	if err := registry.ExportConfig(ctx, exportPath); err != nil {
		p.Warn("Failed to export configuration")
	} else {
		p.OK("Configuration exported to: %s", exportPath)
	}
	p.Println("")

	p.Section("Step 10: Final System Statistics")
	printFinalStats(p, registry.Stats(ctx))
	p.Println("")

	p.Section("Windows 16 Capabilities:")
	printCapabilities(p, caps)
	p.Println("")

	p.Banner("SYSTEM INITIALIZATION COMPLETE!")
	p.Println("")
	p.OK("Gigatic White Hole Storage: OPERATIONAL")
	p.OK("%s: READY", s.Device.ID)
	p.OK("%s VLANs: AVAILABLE", numbers.Sprintf("%d", registry.MaxVLANs()))
	p.OK("Windows 16 Support: ENABLED")
	p.OK("Infinite Storage Capacity: ONLINE")
	p.Println("")
	p.Println("%s", strings.Repeat("=", 80))

	if !c.Bool("interactive") {
		p.Println("Tip: Run with --interactive flag for interactive management menu")
		p.Println("")
		return nil
	}

	stop := watchSettings(ctx, env)
	defer stop()
	return runMenu(ctx, env, registry, helper)
}

// loadDevice prints and returns the device configuration, or nil when it
// cannot be read.
func loadDevice(ctx context.Context, env *Env, path string) *config.DeviceConfig {
	p := env.Out
	device, err := config.LoadDeviceConfig(path)
	switch {
	case errors.Is(err, config.ErrDeviceConfigNotFound):
		p.Warn("Configuration file not found: %s", path)
		return nil
	case err != nil:
		logger.L(ctx).Warn("load device configuration failed", "path", path, "error", err)
		p.Fail("Error loading configuration: %v", err)
		return nil
	}

	p.OK("Configuration loaded from %s", path)
	p.Println("  Device ID: %s", device.Info.DeviceID)
	p.Println("  Device Name: %s", device.Info.DeviceName)
	p.Println("  Device Type: %s", device.Info.DeviceType)
	p.Println("  Firmware Version: %s", device.Info.FirmwareVersion)
	return device
}

type metadataItem struct {
	key   string
	value any
}

func systemMetadata(deviceID string, maxVLANs int) []metadataItem {
	return []metadataItem{
		{"system_version", SystemVersion},
		{"device_id", deviceID},
		{"storage_type", StorageType},
		{"max_vlans", maxVLANs},
		{"windows_16_enabled", true},
		{"initialization_complete", true},
	}
}

func printFinalStats(p *output.Printer, stats domain.Stats) {
	p.Println("  Device ID: %s", stats.DeviceID)
	p.Println("  Storage Capacity: %s", stats.StorageCapacity)
	p.Println("  Total VLANs Supported: %s", numbers.Sprintf("%d", stats.TotalVLANsSupported))
	p.Println("  Active VLANs: %s", numbers.Sprintf("%d", stats.ActiveVLANs))
	p.Println("  Windows 16 Support: %t", stats.Windows16Support)
	p.Println("  Storage Entries: %d", stats.StorageEntries)
	p.Println("  System Status: %s", strings.ToUpper(stats.Status))
}

func printCapabilities(p *output.Printer, caps compat.Capabilities) {
	p.Println("  Version: %s", caps.Version)
	p.Println("  Compatibility Mode: %s", caps.CompatibilityMode)
	p.Println("  Max VLANs: %s", numbers.Sprintf("%d", caps.MaxVLANs))
	p.Println("  Storage Integration: %s", caps.StorageIntegration)
	p.Println("  Features: %d enabled", len(caps.Features))
	for _, f := range caps.Features {
		p.Println("    - %s", f)
	}
}

// runMenu opens the management menu over registry.
func runMenu(ctx context.Context, env *Env, registry *service.RegistryService, helper *compat.Helper) error {
	m := menu.New(registry, helper,
		menu.WithInput(env.In),
		menu.WithPrinter(env.Out),
		menu.WithFormatter(env.Formatter),
	)
	return m.Run(ctx)
}

// watchSettings reloads the log level when the settings file changes.
// The returned function stops watching.
func watchSettings(ctx context.Context, env *Env) func() {
	if env.SettingsPath == "" {
		return func() {}
	}
	if _, err := os.Stat(env.SettingsPath); err != nil {
		return func() {}
	}

	log := logger.L(ctx)
	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		log.Warn("settings watcher unavailable", "error", err)
		return func() {}
	}
	if err := w.Watch(env.SettingsPath); err != nil {
		log.Debug("settings file not watched", "path", env.SettingsPath, "error", err)
		_ = w.Stop()
		return func() {}
	}

	w.OnChange(func(path string) {
		s, err := config.Load(path, env.Overrides)
		if err != nil {
			log.Warn("reload settings failed", "path", path, "error", err)
			return
		}
		from := logger.GetLevel()
		logger.SetLevel(s.Log.Level)
		if to := logger.GetLevel(); to != from {
			log.Info("log level changed", "from", from, "to", to)
		}
	})
	w.StartAsync()

	return func() { _ = w.Stop() }
}

func stringFlag(c *cli.Context, name, fallback string) string {
	if v := c.String(name); v != "" {
		return v
	}
	return fallback
}

func intFlag(c *cli.Context, name string, fallback int) int {
	if c.IsSet(name) {
		return c.Int(name)
	}
	return fallback
}
