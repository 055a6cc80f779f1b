// Package snapshot reads and writes registry export files.
//
// An export file is a single indented JSON document:
//
//	{
//	  "device_id": "phuhanddevice-81",
//	  "vlan_metadata": {"total_vlans": 1000000, "active_vlans": 3, ...},
//	  "active_vlans": [1, 10, 100],
//	  "storage_stats": {...}
//	}
//
// Writes go to a temporary file in the target directory and are renamed
// into place. Reads only look at device_id and active_vlans; the rest of
// the document is informational.
package snapshot
