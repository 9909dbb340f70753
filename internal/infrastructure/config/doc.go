// Package config provides YAML configuration loading for Stockroom.
//
// Configuration is resolved in three layers, each overriding the last:
//
//  1. Hardcoded defaults (defaultConfig)
//  2. The YAML file passed to Load
//  3. STOCKROOM_* environment variables
//
// The loaded Config is validated before use; an invalid configuration
// fails startup rather than producing surprising runtime behaviour.
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
