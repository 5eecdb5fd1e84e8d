// Package extsvc holds thin HTTP clients for the services the ledger
// consumes but does not own: client management and the document store.
package extsvc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// ClientDirectory checks client existence against the client-management
// service.
type ClientDirectory struct {
	http    *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewClientDirectory(httpClient *http.Client, baseURL string, logger *zap.Logger) *ClientDirectory {
	return &ClientDirectory{http: httpClient, baseURL: baseURL, logger: logger}
}

func (c *ClientDirectory) Exists(ctx context.Context, clientID string) (bool, error) {
	u := fmt.Sprintf("%s/clients/%s", c.baseURL, url.PathEscape(clientID))
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		return false, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("client directory unreachable", zap.Error(err))
		return false, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return false, nil
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return true, nil
	default:
		return false, fmt.Errorf("client directory returned %d", res.StatusCode)
	}
}
