package extsvc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// DocumentResolver verifies that a signed-document reference exists in the
// document store.
type DocumentResolver struct {
	http    *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewDocumentResolver(httpClient *http.Client, baseURL string, logger *zap.Logger) *DocumentResolver {
	return &DocumentResolver{http: httpClient, baseURL: baseURL, logger: logger}
}

func (c *DocumentResolver) Resolve(ctx context.Context, documentID string) (bool, error) {
	u := fmt.Sprintf("%s/documents/%s", c.baseURL, url.PathEscape(documentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
	if err != nil {
		return false, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("document store unreachable", zap.Error(err))
		return false, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return false, nil
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return true, nil
	default:
		return false, fmt.Errorf("document store returned %d", res.StatusCode)
	}
}
