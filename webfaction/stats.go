package webfaction

import (
	"context"
)

// ListDiskUsage retrieves disk usage stats for the account.
func (c *Client) ListDiskUsage(ctx context.Context) (*DiskUsage, error) {
	var usage DiskUsage
	if err := c.call(ctx, "list_disk_usage", nil, &usage); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("total", usage.Total).
		Str("quota", usage.Quota).
		Msg("Retrieved disk usage from WebFaction")
	return &usage, nil
}

// ListBandwidthUsage retrieves bandwidth stats for the account's websites,
// grouped into daily and monthly periods.
func (c *Client) ListBandwidthUsage(ctx context.Context) (*BandwidthUsage, error) {
	var usage BandwidthUsage
	if err := c.call(ctx, "list_bandwidth_usage", nil, &usage); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("daily_periods", len(usage.Daily)).
		Int("monthly_periods", len(usage.Monthly)).
		Msg("Retrieved bandwidth usage from WebFaction")
	return &usage, nil
}

// ListApps retrieves the applications installed on the account.
func (c *Client) ListApps(ctx context.Context) ([]App, error) {
	var apps []App
	if err := c.call(ctx, "list_apps", nil, &apps); err != nil {
		return nil, err
	}

	c.logger.Debug().Msgf("Retrieved %d apps from WebFaction", len(apps))
	return apps, nil
}
