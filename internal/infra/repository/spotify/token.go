package spotify

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

type cachedToken struct {
	Value     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (t cachedToken) validAt(now time.Time) bool {
	return t.Value != "" && now.Before(t.ExpiresAt)
}

// Token returns a bearer token for the API, requesting a new one through the
// client credentials grant when none is cached or the cached one has expired.
// Concurrent callers racing on an expired token may each request one.
func (client *SpotifyClient) Token(ctx context.Context) (string, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.Token")
	defer span.End()

	now := client.now()

	client.tokenMu.Lock()
	token := client.token
	client.tokenMu.Unlock()

	if token.validAt(now) {
		span.AddEvent("Token is still valid", trace.WithAttributes(
			attribute.Float64("seconds_until_expiry", token.ExpiresAt.Sub(now).Seconds()),
		))
		return token.Value, nil
	}

	if shared, ok := client.sharedToken(ctx, now); ok {
		span.AddEvent("Token loaded from shared cache")
		client.storeToken(shared)
		return shared.Value, nil
	}

	token, err := client.fetchToken(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	client.storeToken(token)
	client.shareToken(ctx, token)

	span.AddEvent("Token refreshed")

	return token.Value, nil
}

func (client *SpotifyClient) fetchToken(ctx context.Context) (cachedToken, error) {
	client.logger.Debug("Fetching new access token")

	ctx = context.WithValue(ctx, oauth2.HTTPClient, client.httpClient)

	token, err := client.credentials.Token(ctx)
	if err != nil {
		authErr := newAuthError(err)
		client.logger.WithError(authErr).Error("Authentication error")
		return cachedToken{}, authErr
	}

	now := client.now()
	lifetime, ok := expiresIn(token)
	if !ok && !token.Expiry.IsZero() {
		lifetime = token.Expiry.Sub(now)
	}

	client.logger.WithField("expires_in", lifetime.String()).Debug("New access token obtained")

	return cachedToken{
		Value:     token.AccessToken,
		ExpiresAt: now.Add(lifetime),
	}, nil
}

func (client *SpotifyClient) storeToken(token cachedToken) {
	client.tokenMu.Lock()
	client.token = token
	client.tokenMu.Unlock()
}

func (client *SpotifyClient) sharedToken(ctx context.Context, now time.Time) (cachedToken, bool) {
	if client.tokenCache == nil {
		return cachedToken{}, false
	}

	raw, err := client.tokenCache.Get(ctx, client.tokenKey)
	if err != nil || raw == "" {
		client.logger.WithError(err).Debug("No shared access token")
		return cachedToken{}, false
	}

	var token cachedToken
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		client.logger.WithError(err).Warn("Discarding malformed shared access token")
		return cachedToken{}, false
	}

	return token, token.validAt(now)
}

func (client *SpotifyClient) shareToken(ctx context.Context, token cachedToken) {
	if client.tokenCache == nil {
		return
	}

	ttl := token.ExpiresAt.Sub(client.now())
	if ttl <= 0 {
		return
	}

	payload, err := json.Marshal(token)
	if err != nil {
		client.logger.WithError(err).Warn("Failed to encode access token for shared cache")
		return
	}

	if err := client.tokenCache.Set(ctx, client.tokenKey, payload, ttl); err != nil {
		trace.SpanFromContext(ctx).RecordError(err)
		client.logger.WithError(err).Warn("Failed to share access token")
	}
}

// expiresIn reads the raw expires_in field of the token response, which
// oauth2 only exposes as an absolute expiry computed with its own clock.
func expiresIn(token *oauth2.Token) (time.Duration, bool) {
	switch v := token.Extra("expires_in").(type) {
	case float64:
		return time.Duration(v * float64(time.Second)), true
	case json.Number:
		secs, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return time.Duration(secs * float64(time.Second)), true
	case string:
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return time.Duration(secs * float64(time.Second)), true
	}

	return 0, false
}
