// Package rpc contains thin typed wrappers around the backend command
// surface. Each exported method issues exactly one backend call and returns
// its typed result or a structured *bridge.Error. No retries, no batching,
// no caching: the backend is trusted as the single source of truth.
//
// Wire DTOs in this package use the backend's snake_case field naming; the
// mapper layer is the sole translation point to the UI models.
package rpc

import "context"

// Invoker is the transport seam; *bridge.Conn satisfies it, tests provide
// fakes.
type Invoker interface {
	Invoke(ctx context.Context, command string, args, reply any) error
}

// Client exposes the backend command surface as typed calls.
type Client struct {
	bridge Invoker
}

func New(bridge Invoker) *Client {
	return &Client{bridge: bridge}
}

type empty struct{}

// Ping probes bridge reachability.
func (c *Client) Ping(ctx context.Context) error {
	return c.bridge.Invoke(ctx, "ping", empty{}, &empty{})
}
