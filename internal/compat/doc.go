// Package compat implements the Windows 16 compatibility helper.
//
// The helper never owns records. It decorates VLANs with a fixed set of
// optimization fields, bulk-creates VLANs through any VLANCreator (the
// registry service in practice), validates device configuration maps and
// renders a PowerShell helper script from an embedded template.
//
// Everything the helper reports comes from an immutable Profile.
package compat
