package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yndnr/whitehole-go/internal/infra/confloader"
)

// ErrDeviceConfigNotFound is returned when the device configuration file
// does not exist.
var ErrDeviceConfigNotFound = errors.New("device configuration file not found")

// DefaultSettingsPath returns the default settings file path.
func DefaultSettingsPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".whitehole", "settings.yaml")
}

// Load builds Settings from defaults, the settings file at path, the
// environment and overrides. A missing file at the default path is fine;
// a missing file that was asked for explicitly is an error.
func Load(path string, overrides map[string]any) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultSettingsPath()
	}

	opts := []confloader.Option{
		confloader.WithDotEnv(".env"),
		confloader.WithOverrides(overrides),
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			opts = append(opts, confloader.WithConfigFile(path))
		} else if explicit {
			return nil, fmt.Errorf("settings file %s: %w", path, err)
		}
	}

	s := Default()
	if err := confloader.NewLoader(opts...).Load(s); err != nil {
		return nil, err
	}
	if err := s.Verify(); err != nil {
		return nil, err
	}
	return s, nil
}

// DeviceInfo is the device_info section of a device configuration file.
type DeviceInfo struct {
	DeviceID        string
	DeviceName      string
	DeviceType      string
	FirmwareVersion string
}

// DeviceConfig is a parsed device configuration file.
type DeviceConfig struct {
	Path string
	Info DeviceInfo
	// Raw holds the whole document for validation.
	Raw map[string]any
}

// LoadDeviceConfig reads a JSON or YAML device configuration file.
func LoadDeviceConfig(path string) (*DeviceConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDeviceConfigNotFound, path)
	}

	raw, err := confloader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, _ := raw["device_info"].(map[string]any)
	return &DeviceConfig{
		Path: path,
		Info: DeviceInfo{
			DeviceID:        str(info["device_id"]),
			DeviceName:      str(info["device_name"]),
			DeviceType:      str(info["device_type"]),
			FirmwareVersion: str(info["firmware_version"]),
		},
		Raw: raw,
	}, nil
}

func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
