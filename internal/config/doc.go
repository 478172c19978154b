// Package config handles loading and parsing the bookdesk configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bookdesk/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	api_base = "https://backend-web-book.onrender.com"
//	request_timeout_seconds = 10
//	log_file = "~/.local/share/bookdesk/bookdesk.log"
//	log_level = "info"
//
// The API base may point at a local backend during development
// (e.g. "http://localhost:5000").
package config
