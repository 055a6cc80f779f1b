package snapshot

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	tempPattern = ".whitehole-export-*.tmp"
	filePerm    = 0o644
)

// ErrMalformed is returned when an export file is not a usable document.
var ErrMalformed = errors.New("snapshot: malformed export file")

// WriteFile writes doc to path, replacing any existing file.
// The containing directory must exist.
func WriteFile(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "could not marshal export for device %s", doc.DeviceID)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return errors.Wrapf(err, "could not create temp file in %s", dir)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "could not write to file %s", tmpPath)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "could not sync file %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "could not close file %s", tmpPath)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return errors.Wrapf(err, "could not chmod file %s", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "could not move export into %s", path)
	}

	return nil
}

// ReadFile reads the device ID and VLAN ID list from an export file.
// A document without active_vlans yields an empty list.
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read export file %s", path)
	}
	return Parse(data)
}

// Parse extracts a Manifest from raw export bytes.
func Parse(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(ErrMalformed, "invalid json")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Wrap(ErrMalformed, "top-level value is not an object")
	}

	m := &Manifest{
		DeviceID: root.Get("device_id").String(),
	}

	ids := root.Get("active_vlans")
	if !ids.Exists() || ids.Type == gjson.Null {
		return m, nil
	}
	if !ids.IsArray() {
		return nil, errors.Wrap(ErrMalformed, "active_vlans is not an array")
	}

	for i, item := range ids.Array() {
		id, ok := integer(item)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "active_vlans[%d] is not an integer: %s", i, item.Raw)
		}
		m.ActiveVLANs = append(m.ActiveVLANs, id)
	}

	return m, nil
}

// maxExactFloat is the largest magnitude a float64 holds without losing
// integer precision.
const maxExactFloat = 1 << 53

// integer accepts any whole JSON number that fits in an int. Range checks
// against the registry are left to the importer.
func integer(r gjson.Result) (int, bool) {
	if r.Type != gjson.Number {
		return 0, false
	}
	if n, err := strconv.ParseInt(r.Raw, 10, strconv.IntSize); err == nil {
		return int(n), true
	}
	if r.Num != math.Trunc(r.Num) || math.Abs(r.Num) > maxExactFloat {
		return 0, false
	}
	return int(r.Num), true
}
