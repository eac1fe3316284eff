// Package config loads scaffold's layered configuration with koanf.
//
// Three layers are merged, lowest first:
//
//   - the embedded defaults (embedded/defaults.toml)
//   - the global config file (config.toml, config.yaml or config.yml in the
//     scaffold config directory, or the file passed with --config)
//   - SCAFFOLD_* environment variables, for engine settings only
//
// The [scaffold] table configures the engine itself and is decoded into
// Settings. Every other key in the config file is a template variable:
// nested tables are flattened to dotted keys, and a top-level [variables]
// table is unwrapped so the file can mirror the defaults layout.
package config
