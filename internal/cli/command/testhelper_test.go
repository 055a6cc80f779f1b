package command

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runApp runs the CLI in a scratch working directory with an isolated
// home directory. stdin feeds the interactive menu.
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runAppLogs(t, stdin, args...)
	return out, err
}

// runAppLogs is runApp that also returns what was logged.
func runAppLogs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var out, logs bytes.Buffer
	app := App()
	app.Writer = &out
	app.ErrWriter = &logs
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"whitehole", "--no-color"}, args...))
	return out.String(), logs.String(), err
}

// writeDeviceConfig writes a device configuration file and returns its path.
func writeDeviceConfig(t *testing.T, enabled bool) string {
	t.Helper()

	cfg := map[string]any{
		"device_info": map[string]any{
			"device_id":        "phuhanddevice-81",
			"device_name":      "PhuHand Device 81",
			"device_type":      "network_storage",
			"firmware_version": "8.1.0",
		},
		"windows_16_support": map[string]any{
			"enabled":            enabled,
			"compatibility_mode": "full",
		},
		"vlan_configuration": map[string]any{
			"max_vlans": 1000000,
		},
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "device.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// assertContains fails the test for each want missing from out.
func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n--- output ---\n%s", want, out)
		}
	}
}
