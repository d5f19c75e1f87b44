// Package config provides kaze's settings.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← KAZE_*, highest priority
//	├─────────────────────────────┤
//	│  2. TOML file               │  ← only when -config or KAZE_CONFIG names one
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← lowest priority
//	└─────────────────────────────┘
//
// Command line flags are applied by the caller on top of the result.
//
// A file holds flat keys:
//
//	tab_stop = 4
//	message_timeout = "5s"
//	quit_key = "q"
//	log_level = "info"
//	log_file = "/tmp/kaze.log"
//	watch = true
//
// # Sub-packages
//
//   - loader: TOML file and environment variable loading
package config
