// Package confloader loads layered configuration with koanf.
//
// Sources, lowest priority first:
//
//  1. Defaults already present in the target struct
//  2. A YAML or JSON file
//  3. Environment variables (WHITEHOLE_<SECTION>_<KEY>), optionally
//     seeded from a .env file
//  4. An explicit map, usually built from command-line flags
//
// Watcher reports changes to individual files through fsnotify.
package confloader
