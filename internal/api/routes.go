package api

import (
	"context"
	"fmt"
)

// Route maps a URL pattern on a zone to a deployed script.
type Route struct {
	ID      string `json:"id"`
	Pattern string `json:"pattern"`
	Script  string `json:"script,omitempty"`
}

// ListRoutes lists the script routes on a zone.
func (c *Client) ListRoutes(ctx context.Context, zoneID string) ([]Route, error) {
	path := fmt.Sprintf("/zones/%s/workers/routes", zoneID)
	var routes []Route
	if err := c.doJSON(ctx, "GET", path, nil, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// CreateRoute attaches a script to a URL pattern on a zone.
func (c *Client) CreateRoute(ctx context.Context, zoneID, pattern, script string) (*Route, error) {
	path := fmt.Sprintf("/zones/%s/workers/routes", zoneID)
	body := map[string]string{"pattern": pattern, "script": script}
	var route Route
	if err := c.doJSON(ctx, "POST", path, body, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

// DeleteRoute removes a route by ID.
func (c *Client) DeleteRoute(ctx context.Context, zoneID, routeID string) error {
	path := fmt.Sprintf("/zones/%s/workers/routes/%s", zoneID, routeID)
	return c.doJSON(ctx, "DELETE", path, nil, nil)
}
