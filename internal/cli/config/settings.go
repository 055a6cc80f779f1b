package config

import (
	"fmt"

	"github.com/yndnr/whitehole-go/internal/compat"
	"github.com/yndnr/whitehole-go/internal/core/domain"
	"github.com/yndnr/whitehole-go/internal/telemetry/logger"
)

// Default file names.
const (
	DefaultDeviceConfigFile = "phuhanddevice_81_config.json"
	DefaultExportFile       = "white_hole_config.json"
	DefaultBulkStart        = 1000
	DefaultBulkCount        = 1000
)

// Settings is the CLI configuration.
type Settings struct {
	Device   DeviceSettings   `koanf:"device" yaml:"device"`
	Registry RegistrySettings `koanf:"registry" yaml:"registry"`
	Compat   CompatSettings   `koanf:"compat" yaml:"compat"`
	Log      LogSettings      `koanf:"log" yaml:"log"`
	Metrics  MetricsSettings  `koanf:"metrics" yaml:"metrics"`
	CLI      CLISettings      `koanf:"cli" yaml:"cli"`
}

// DeviceSettings identifies the device.
type DeviceSettings struct {
	ID         string `koanf:"id" yaml:"id"`
	ConfigFile string `koanf:"config_file" yaml:"config_file"`
}

// RegistrySettings configures the VLAN registry.
type RegistrySettings struct {
	MaxVLANs   int    `koanf:"max_vlans" yaml:"max_vlans"`
	ExportFile string `koanf:"export_file" yaml:"export_file"`
}

// CompatSettings configures the Windows 16 helper.
type CompatSettings struct {
	BulkStart  int    `koanf:"bulk_start" yaml:"bulk_start"`
	BulkCount  int    `koanf:"bulk_count" yaml:"bulk_count"`
	ScriptFile string `koanf:"script_file" yaml:"script_file"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// MetricsSettings configures the metrics textfile.
type MetricsSettings struct {
	Textfile string `koanf:"textfile" yaml:"textfile"`
}

// CLISettings holds presentation preferences.
type CLISettings struct {
	Output  string `koanf:"output" yaml:"output"` // table, json, yaml
	NoColor bool   `koanf:"no_color" yaml:"no_color"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		Device: DeviceSettings{
			ID:         domain.DefaultDeviceID,
			ConfigFile: DefaultDeviceConfigFile,
		},
		Registry: RegistrySettings{
			MaxVLANs:   domain.DefaultMaxVLANs,
			ExportFile: DefaultExportFile,
		},
		Compat: CompatSettings{
			BulkStart:  DefaultBulkStart,
			BulkCount:  DefaultBulkCount,
			ScriptFile: compat.DefaultScriptFile,
		},
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
		CLI: CLISettings{
			Output: "table",
		},
	}
}

// Verify checks the settings for values no command can work with.
func (s *Settings) Verify() error {
	if s.Device.ID == "" {
		return domain.ErrInvalidArgument.WithDetails("device.id must not be empty")
	}
	if s.Registry.MaxVLANs < domain.MinVLANID {
		return domain.ErrInvalidArgument.WithDetailsf("registry.max_vlans must be at least %d, got %d", domain.MinVLANID, s.Registry.MaxVLANs)
	}
	if s.Compat.BulkCount < 0 {
		return domain.ErrInvalidArgument.WithDetailsf("compat.bulk_count must not be negative, got %d", s.Compat.BulkCount)
	}
	if !logger.ValidLevel(s.Log.Level) {
		return domain.ErrInvalidArgument.WithDetailsf("unknown log level %q", s.Log.Level)
	}
	switch s.Log.Format {
	case "text", "json":
	default:
		return domain.ErrInvalidArgument.WithDetailsf("unknown log format %q", s.Log.Format)
	}
	switch s.CLI.Output {
	case "table", "json", "yaml":
	default:
		return domain.ErrInvalidArgument.WithDetailsf("unknown output format %q", s.CLI.Output)
	}
	return nil
}

// String summarizes the settings for debug logs.
func (s *Settings) String() string {
	return fmt.Sprintf("device=%s max_vlans=%d log=%s/%s output=%s",
		s.Device.ID, s.Registry.MaxVLANs, s.Log.Level, s.Log.Format, s.CLI.Output)
}
