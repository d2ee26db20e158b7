package bridge

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// ServiceName is the gRPC service all backend commands are registered under.
// A command "list_folders" becomes the full method "/vault.Backend/list_folders".
const ServiceName = "vault.Backend"

// RequestIDHeader carries a per-call id so client and backend logs can be
// correlated.
const RequestIDHeader = "x-request-id"

// Conn is a connection to the backend bridge. It issues exactly one backend
// call per Invoke and performs no retries or batching; the backend is the
// single source of truth.
type Conn struct {
	conn *grpc.ClientConn
}

// Dial connects to the backend bridge at addr. Extra dial options are
// appended after the defaults, so tests can override the dialer.
func Dial(addr string, opts ...grpc.DialOption) (*Conn, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Conn{conn: conn}, nil
}

// Invoke issues the named backend command with the given JSON-serializable
// args, decoding the result into reply. Failures are returned as *Error.
func (c *Conn) Invoke(ctx context.Context, command string, args, reply any) error {
	ctx = metadata.AppendToOutgoingContext(ctx, RequestIDHeader, uuid.NewString())

	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+command, args, reply); err != nil {
		return decodeError(err)
	}
	return nil
}

func (c *Conn) Close() error {
	return c.conn.Close()
}
