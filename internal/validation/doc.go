// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the whole process; it caches
// struct metadata after the first call. Field names in error messages are
// taken from the koanf or json struct tag so they match what the user wrote
// in a configuration file or dataset:
//
//	type DataConfig struct {
//	    Format string `koanf:"format" validate:"required,oneof=text json"`
//	}
//
//	if err := validation.ValidateStruct(&cfg); err != nil {
//	    return fmt.Errorf("invalid configuration: %w", err)
//	}
//	// invalid configuration: data.format must be one of: text json
//
// In addition to the built-in tags, "notblank" rejects strings that contain
// only whitespace.
package validation
