// Package config manages user-level settings stored at ~/.talon/config.yaml.
// Values may also come from TALON_* environment variables; the CLI binds its
// flags on top so the precedence is flag, env, file, default.
package config
