// Package config provides configuration management for the base32h CLI.
//
// Settings are read with viper from, in order of precedence: command-line
// flags, a config file, and built-in defaults. The default config file is
// $HOME/.base32h/config.yaml. A missing default file is not an error and is
// never created implicitly; run "base32h config init" to write one.
//
// Keys:
//   - binary.format: how raw bytes are read and written, "raw" or "hex" (default "raw")
//   - strict: validate input and fail instead of dropping invalid characters (default false)
//   - newline: end every result with a newline (default true)
package config
