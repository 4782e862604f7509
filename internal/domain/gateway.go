package domain

import "context"

//go:generate mockgen -source=gateway.go -destination=gateway_mock.go -package=domain

// GatewayResponse is the push provider's decoded response body, returned
// verbatim to the caller for observability.
type GatewayResponse map[string]any

// PushGateway delivers one notification to a set of recipients in a single
// broadcast request. A transport error, timeout, or non-2xx status is a
// delivery failure for that entry only.
type PushGateway interface {
	SendBroadcast(ctx context.Context, entry PlanEntry, recipients []string) (GatewayResponse, error)
}
