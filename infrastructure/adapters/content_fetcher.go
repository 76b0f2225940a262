package adapters

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/domain"
)

// ContentFetcher executes one HTTP request against a synthesis backend and
// drains the response body. Non-success statuses become ProviderError with
// the backend's body text as message; deadline overruns become
// ProviderTimeoutError. No retries.
type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	platform string
	client   *http.Client
	timeout  time.Duration
	logger   outbound.LoggerPort
}

func NewContentFetcher(platform string, timeout time.Duration, logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		platform: platform,
		client:   &http.Client{Timeout: timeout},
		timeout:  timeout,
		logger:   logger,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &domain.ProviderTimeoutError{Platform: c.platform, Timeout: c.timeout}
		}
		c.logger.ErrorWithFields(err, "failed to send the HTTP request", map[string]interface{}{
			"platform": c.platform,
			"method":   req.Method,
			"URL":      req.URL.String(),
		})
		return nil, &domain.ProviderError{Platform: c.platform, Message: err.Error()}
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			c.logger.Error(closeErr, "failed to close the response body")
		}
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		c.logger.ErrorWithFields(nil, "HTTP request returned non-OK status code", map[string]interface{}{
			"platform": c.platform,
			"method":   req.Method,
			"URL":      req.URL.String(),
			"status":   res.StatusCode,
			"message":  string(body),
		})
		return nil, &domain.ProviderError{Platform: c.platform, StatusCode: res.StatusCode, Message: string(body)}
	}

	// Audio comes back as a chunked byte stream, drained fully before return.
	payload, err := io.ReadAll(res.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &domain.ProviderTimeoutError{Platform: c.platform, Timeout: c.timeout}
		}
		return nil, &domain.ProviderError{Platform: c.platform, Message: err.Error()}
	}

	return payload, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
