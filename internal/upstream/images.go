package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// ResolveImageURL exchanges an opaque storage key for a time-limited
// displayable URL. This goes to the image resolver service, not the order
// API.
func (c *Client) ResolveImageURL(ctx context.Context, key string) (string, error) {
	endpoint := c.resolverURL + "/api/images/view?key=" + url.QueryEscape(key)

	var display string
	_, err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &display)
	if err != nil {
		return "", err
	}
	return display, nil
}
