// SPDX-License-Identifier: MIT

// Package config loads chainstat run configuration.
//
// Sources, later ones win:
//
//  1. Default()              — built-in defaults.
//  2. YAML file (Load)       — runtime block, job defaults and the job list.
//  3. Environment variables  — CHAINSTAT_OUTPUT_DIR, CHAINSTAT_WORKERS,
//     CHAINSTAT_LOG_LEVEL, CHAINSTAT_LOG_FORMAT.
//
// The result is validated with struct tags plus a struct-level rule for
// freely-rotating jobs; every failure wraps ErrInvalidConfig.
//
// Example file:
//
//	output_dir: out
//	workers: 2
//	defaults:
//	  bins: 1000
//	  samples: 1000000
//	jobs:
//	  - name: fjc8
//	    model: fjc
//	    links: 8
//	    seed: 1
//	  - name: frc256
//	    model: frc
//	    links: 256
//	    persistence: 0.4545
package config
