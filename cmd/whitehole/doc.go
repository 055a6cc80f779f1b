// Package main provides the entry point for whitehole.
//
// whitehole initializes the white hole VLAN registry, drives the Windows 16
// helper and offers an interactive management menu.
package main
