package compat

import (
	"strings"

	"github.com/yndnr/whitehole-go/internal/core/domain"
)

// Device configuration keys.
const (
	KeyWin16Support = "windows_16_support"
	KeyVLANConfig   = "vlan_configuration"
	KeyEnabled      = "enabled"
)

var requiredKeys = []string{KeyWin16Support, KeyVLANConfig}

// ValidateConfig checks a device configuration map. Both required sections
// must be present and windows_16_support.enabled must be truthy (see truthy).
// It returns the first failure.
func (h *Helper) ValidateConfig(cfg map[string]any) error {
	for _, key := range requiredKeys {
		if _, ok := cfg[key]; !ok {
			err := domain.ErrConfigMissingKey.WithDetails(key)
			h.log.Error("device configuration invalid", "error", err)
			return err
		}
	}

	section, _ := cfg[KeyWin16Support].(map[string]any)
	if !truthy(section[KeyEnabled]) {
		h.log.Warn("windows 16 support is not enabled")
		return domain.ErrWin16Disabled
	}

	h.log.Info("windows 16 configuration is valid")
	return nil
}

// truthy reports whether a decoded configuration value counts as set:
// true, a non-zero number, a non-empty list or map, or one of the strings
// true/yes/on/1/enabled in any case.
func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1", "enabled":
			return true
		}
		return false
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}
	return false
}
