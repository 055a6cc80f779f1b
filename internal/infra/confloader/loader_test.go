package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Device struct {
		ID         string `koanf:"id"`
		ConfigFile string `koanf:"config_file"`
	} `koanf:"device"`
	Registry struct {
		MaxVLANs int  `koanf:"max_vlans"`
		Enabled  bool `koanf:"enabled"`
	} `koanf:"registry"`
}

func unmarshal(t *testing.T, l *Loader) testConfig {
	t.Helper()
	var cfg testConfig
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return cfg
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/settings.yaml"),
		WithDotEnv("/path/to/.env"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/settings.yaml" {
		t.Errorf("filePath = %q", l.filePath)
	}
	if l.dotEnvPath != "/path/to/.env" {
		t.Errorf("dotEnvPath = %q", l.dotEnvPath)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeFile(t, "settings.yaml", `
device:
  id: "dev-1"
registry:
  max_vlans: 4094
  enabled: true
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	cfg := unmarshal(t, l)
	if cfg.Device.ID != "dev-1" {
		t.Errorf("device.id = %q, want %q", cfg.Device.ID, "dev-1")
	}
	if cfg.Registry.MaxVLANs != 4094 {
		t.Errorf("registry.max_vlans = %d, want 4094", cfg.Registry.MaxVLANs)
	}
	if !cfg.Registry.Enabled {
		t.Error("registry.enabled should be true")
	}
}

func TestLoader_LoadFile_JSON(t *testing.T) {
	path := writeFile(t, "device.json", `{"windows_16_support":{"enabled":true},"vlan_configuration":{"max_vlans":1000000}}`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	section, _ := l.All()["windows_16_support"].(map[string]any)
	if section["enabled"] != true {
		t.Errorf("windows_16_support = %v, want enabled", section)
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	if err := NewLoader().LoadFile("/nonexistent/settings.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	if err := NewLoader().LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("WHITEHOLE_DEVICE_ID", "env-device")
	t.Setenv("WHITEHOLE_REGISTRY_MAX_VLANS", "4094")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	cfg := unmarshal(t, l)
	if cfg.Device.ID != "env-device" {
		t.Errorf("device.id = %q, want %q", cfg.Device.ID, "env-device")
	}
	if cfg.Registry.MaxVLANs != 4094 {
		t.Errorf("registry.max_vlans = %d, want 4094", cfg.Registry.MaxVLANs)
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_DEVICE_ID", "custom")
	t.Setenv("WHITEHOLE_DEVICE_ID", "ignored")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if cfg := unmarshal(t, l); cfg.Device.ID != "custom" {
		t.Errorf("device.id = %q, want %q", cfg.Device.ID, "custom")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"WHITEHOLE_DEVICE_ID", "device.id"},
		{"WHITEHOLE_REGISTRY_MAX_VLANS", "registry.max_vlans"},
		{"WHITEHOLE_COMPAT_BULK_START", "compat.bulk_start"},
		{"WHITEHOLE_DEBUG", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := envKey(DefaultEnvPrefix, tt.in); got != tt.want {
				t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	if err := l.LoadMap(map[string]any{
		"device.id":        "map-device",
		"registry.enabled": true,
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	cfg := unmarshal(t, l)
	if cfg.Device.ID != "map-device" {
		t.Errorf("device.id = %q, want %q", cfg.Device.ID, "map-device")
	}
	if !cfg.Registry.Enabled {
		t.Error("registry.enabled should be true")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeFile(t, "settings.yaml", `
device:
  id: "from-file"
  config_file: "from-file.json"
registry:
  max_vlans: 100
`)

	t.Setenv("WHITEHOLE_DEVICE_ID", "from-env")
	t.Setenv("WHITEHOLE_REGISTRY_MAX_VLANS", "200")

	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"registry.max_vlans": 300}),
	)

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Device.ID != "from-env" {
		t.Errorf("Device.ID = %q, want from-env (env should override file)", cfg.Device.ID)
	}
	if cfg.Device.ConfigFile != "from-file.json" {
		t.Errorf("Device.ConfigFile = %q, want from-file.json", cfg.Device.ConfigFile)
	}
	if cfg.Registry.MaxVLANs != 300 {
		t.Errorf("Registry.MaxVLANs = %d, want 300 (overrides should win)", cfg.Registry.MaxVLANs)
	}
}

func TestLoader_Load_KeepsDefaults(t *testing.T) {
	var cfg testConfig
	cfg.Device.ID = "default-device"
	cfg.Registry.MaxVLANs = 1000000

	l := NewLoader(WithOverrides(map[string]any{"registry.enabled": true}))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Device.ID != "default-device" || cfg.Registry.MaxVLANs != 1000000 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if !cfg.Registry.Enabled {
		t.Error("Registry.Enabled should be true")
	}
}

func TestLoader_Load_DotEnv(t *testing.T) {
	// Register for cleanup; godotenv only sets variables that are unset.
	t.Setenv("WHITEHOLE_DEVICE_ID", "")
	os.Unsetenv("WHITEHOLE_DEVICE_ID")

	path := writeFile(t, ".env", "WHITEHOLE_DEVICE_ID=dotenv-device\n")

	var cfg testConfig
	if err := NewLoader(WithDotEnv(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Device.ID != "dotenv-device" {
		t.Errorf("Device.ID = %q, want dotenv-device", cfg.Device.ID)
	}
}

func TestLoadDotEnv_Missing(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("LoadDotEnv(missing) error = %v", err)
	}
}

func TestLoader_All(t *testing.T) {
	l := NewLoader()
	l.LoadMap(map[string]any{
		"device.id":   "d",
		"device.name": "n",
		"key":         "value",
	})

	all := l.All()
	device, ok := all["device"].(map[string]any)
	if !ok {
		t.Fatalf("All()[device] = %T, want nested map", all["device"])
	}
	if device["id"] != "d" || device["name"] != "n" {
		t.Errorf("device = %v", device)
	}
	if all["key"] != "value" {
		t.Errorf("key = %v", all["key"])
	}
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "device.yaml", `
device_info:
  device_id: phuhanddevice-81
windows_16_support:
  enabled: true
`)

	m, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	win16, ok := m["windows_16_support"].(map[string]any)
	if !ok || win16["enabled"] != true {
		t.Errorf("windows_16_support = %v", m["windows_16_support"])
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("ReadFile(missing) should fail")
	}
}
