package spotify

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var errInvalidJSON = errors.New("response body is not valid JSON")

// call issues an authenticated GET against the API and returns the raw JSON
// body. The request, including any pacing wait, is bounded by timeout; token
// acquisition is not.
func (client *SpotifyClient) call(ctx context.Context, path string, timeout time.Duration) ([]byte, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.call", trace.WithAttributes(
		attribute.String("spotify.path", path),
	))
	defer span.End()

	body, err := client.get(ctx, path, timeout)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return body, nil
}

func (client *SpotifyClient) get(ctx context.Context, path string, timeout time.Duration) ([]byte, error) {
	token, err := client.Token(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger := client.logger.WithField("path", path)

	if client.limiter != nil {
		if err := client.limiter.Wait(ctx); err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, &APIError{Path: path, Err: err}
			}
			// Wait fails early when the next slot is past the deadline.
			return nil, &TimeoutError{Path: path, Timeout: timeout}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.baseURL+path, nil)
	if err != nil {
		return nil, &APIError{Path: path, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	logger.Debug("Making API call")

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, requestError(ctx, path, timeout, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, requestError(ctx, path, timeout, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("API error response")

		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Path:       path,
			Body:       string(body),
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
			Path:       path,
			Body:       string(body),
			Err:        errInvalidJSON,
		}
	}

	logger.Debug("API call successful")

	return body, nil
}

// requestError classifies a failed round trip. Deadline expiry, including an
// http.Client.Timeout shorter than the request timeout, is a TimeoutError.
func requestError(ctx context.Context, path string, timeout time.Duration, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Path: path, Timeout: timeout}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Path: path, Timeout: timeout}
	}

	return &APIError{Path: path, Err: err}
}
