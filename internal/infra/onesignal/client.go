package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/tracing"
)

const (
	DefaultAPIURL = "https://onesignal.com/api/v1/notifications"

	requestTimeout = 30 * time.Second
)

// Client broadcasts notifications through the OneSignal REST API.
type Client struct {
	appID       string
	apiKey      string
	apiURL      string
	deepLinkURL string
	httpClient  *http.Client
}

func NewClient(appID, apiKey, apiURL, deepLinkURL string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Client{
		appID:       appID,
		apiKey:      apiKey,
		apiURL:      apiURL,
		deepLinkURL: deepLinkURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// SendBroadcast delivers one notification to the given player ids and returns
// the decoded API response. A non-2xx status is an error carrying the
// response body.
func (c *Client) SendBroadcast(ctx context.Context, entry domain.PlanEntry, recipients []string) (domain.GatewayResponse, error) {
	payload := notificationRequest{
		AppID:            c.appID,
		IncludePlayerIDs: recipients,
		Headings:         map[string]string{"en": entry.Title},
		Contents:         map[string]string{"en": entry.Body},
		URL:              c.deepLinkURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal notification request: %w", err)
	}

	ctx, span := tracing.StartGatewaySpan(ctx, c.apiURL)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		tracing.RecordDispatchResult(span, err)
		return nil, fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		tracing.RecordDispatchResult(span, err)
		return nil, fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		tracing.RecordDispatchResult(span, err)
		return nil, fmt.Errorf("read notification response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("onesignal returned status %d: %s", resp.StatusCode, respBody)
		tracing.RecordDispatchResult(span, err)
		return nil, err
	}

	var gatewayResp domain.GatewayResponse
	if err := json.Unmarshal(respBody, &gatewayResp); err != nil {
		// A 2xx with an undecodable body still counts as delivered.
		gatewayResp = domain.GatewayResponse{"raw": string(respBody)}
	}

	tracing.RecordDispatchResult(span, nil)
	return gatewayResp, nil
}
