// Package menu provides the interactive management menu.
//
// The menu is a numbered loop over a registry and the Windows 16 helper.
// It reads one answer per line, so it can be driven by a script on stdin
// as well as by a person. End of input leaves the menu cleanly.
package menu
