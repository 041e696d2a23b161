// Cinerec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package recommend

import "fmt"

// CatalogConfig contains tuning parameters for a Catalog.
type CatalogConfig struct {
	// SimilarityCacheSize bounds the number of memoised pairwise movie
	// similarities. Zero disables the cache.
	SimilarityCacheSize int `json:"similarity_cache_size"`
}

// DefaultCatalogConfig returns the default catalog configuration.
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		SimilarityCacheSize: 4096,
	}
}

// Validate checks the configuration for invalid values.
func (c *CatalogConfig) Validate() error {
	if c.SimilarityCacheSize < 0 {
		return fmt.Errorf("similarity_cache_size must be non-negative, got %d", c.SimilarityCacheSize)
	}
	return nil
}
