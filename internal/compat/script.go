package compat

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"
)

// DefaultScriptFile is the default helper script name.
const DefaultScriptFile = "windows16_helper.ps1"

//go:embed templates/helper.ps1.tmpl
var templateFS embed.FS

var scriptTmpl = template.Must(template.ParseFS(templateFS, "templates/helper.ps1.tmpl"))

type scriptData struct {
	DeviceID    string
	MaxVLANs    int
	StorageType string
}

// RenderScript writes the PowerShell helper script to w.
func (h *Helper) RenderScript(w io.Writer) error {
	return scriptTmpl.Execute(w, scriptData{
		DeviceID:    h.deviceID,
		MaxVLANs:    h.profile.MaxVLANs,
		StorageType: h.profile.StorageIntegration,
	})
}

// WriteScript renders the helper script to path.
func (h *Helper) WriteScript(path string) error {
	var buf bytes.Buffer
	if err := h.RenderScript(&buf); err != nil {
		return fmt.Errorf("render helper script: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		h.log.Error("could not write helper script", "path", path, "error", err)
		return fmt.Errorf("write helper script: %w", err)
	}

	h.log.Info("helper script created", "path", path)
	return nil
}
