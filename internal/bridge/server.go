package bridge

import (
	"context"

	"google.golang.org/grpc"
)

// Handler serves one backend command. The decode callback fills the handler's
// own request type from the wire payload; the returned value is serialized
// back with the JSON codec.
type Handler func(ctx context.Context, decode func(any) error) (any, error)

// ServiceDesc builds a grpc.ServiceDesc exposing the given command handlers
// under ServiceName. Because the bridge uses a JSON codec, no generated stubs
// are involved; fake and development backends register commands directly.
func ServiceDesc(handlers map[string]Handler) *grpc.ServiceDesc {
	methods := make([]grpc.MethodDesc, 0, len(handlers))
	for name, handler := range handlers {
		handler := handler
		methods = append(methods, grpc.MethodDesc{
			MethodName: name,
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				return handler(ctx, dec)
			},
		})
	}

	return &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*any)(nil),
		Methods:     methods,
	}
}
