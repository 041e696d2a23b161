// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/validation"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	return c.validateReport()
}

// validateLogging validates the log level name
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

// validateReport checks the movie references listed for prediction.
func (c *Config) validateReport() error {
	for _, ref := range c.Report.Predict {
		i := strings.LastIndexByte(ref, '-')
		if i <= 0 || i == len(ref)-1 {
			return fmt.Errorf("REPORT_PREDICT entry %q must have the form Name-Year", ref)
		}
	}
	return nil
}
