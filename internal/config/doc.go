// Package config loads the homes client configuration.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file given with -config, or ~/.config/homes/config.toml
//  3. HOMES_* environment variables
//
// A missing config file is not an error. Blank values at any layer are
// ignored, so an empty key in the file keeps the default.
//
// LoadEnvFile may be called before Load to export a dotenv file; variables
// already present in the environment are left untouched.
//
// # Defaults
//
//   - api_base: 127.0.0.1:3001 (HOMES_API_BASE)
//   - log_file: ~/.local/state/homes/homes.log (HOMES_LOG_FILE)
//   - log_level: info (HOMES_LOG_LEVEL)
//
// # TOML Format
//
//	api_base = "http://127.0.0.1:3001"
//	log_file = "~/.local/state/homes/homes.log"
//	log_level = "debug"
//
// Tilde expansion is applied to the config path and to log_file.
package config
