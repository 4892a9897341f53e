package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Community.validate(); err != nil {
		return fmt.Errorf("community: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (c *CommunityConfig) validate() error {
	if c.AdoptPoints <= 0 {
		return fmt.Errorf("adopt_points must be > 0 (got %d)", c.AdoptPoints)
	}
	if c.InboxCap <= 0 {
		return fmt.Errorf("inbox_cap must be > 0 (got %d)", c.InboxCap)
	}
	if c.ToastAutoDismiss <= 0 {
		return fmt.Errorf("toast_auto_dismiss must be > 0 (got %v)", c.ToastAutoDismiss)
	}
	if c.PageSizeDefault <= 0 || c.PageSizeDefault > c.PageSizeMax {
		return fmt.Errorf("page_size_default must be in (0, %d] (got %d)", c.PageSizeMax, c.PageSizeDefault)
	}
	return nil
}
