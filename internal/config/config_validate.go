// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance; validator caches struct
// metadata internally, so one instance serves all calls.
var validate = validator.New()

// Validate checks the configuration against the struct-tag rules plus the
// cross-field constraints tags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("field %s failed rule %q (value: %v)",
				first.Namespace(), first.Tag(), first.Value())
		}
		return err
	}

	if c.LayerManagement.MinOpacity > c.LayerManagement.MaxOpacity {
		return fmt.Errorf("layer_management: min_opacity %.2f exceeds max_opacity %.2f",
			c.LayerManagement.MinOpacity, c.LayerManagement.MaxOpacity)
	}
	if c.AnimationTiming.MinHoldSeconds > c.AnimationTiming.MaxHoldSeconds {
		return fmt.Errorf("animation_timing: min_hold_seconds %.1f exceeds max_hold_seconds %.1f",
			c.AnimationTiming.MinHoldSeconds, c.AnimationTiming.MaxHoldSeconds)
	}
	if c.Transformations.Scale.MinFactor > c.Transformations.Scale.MaxFactor {
		return fmt.Errorf("transformations.scale: min_factor %.2f exceeds max_factor %.2f",
			c.Transformations.Scale.MinFactor, c.Transformations.Scale.MaxFactor)
	}
	return nil
}
