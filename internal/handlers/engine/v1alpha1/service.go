package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "webfg.engine.v1alpha1.EngineService"

// Method names
const (
	MethodResolveAttribute = "ResolveAttribute"
	MethodResolveCharacter = "ResolveCharacter"
	MethodTestAction       = "TestAction"
	MethodAttemptAction    = "AttemptAction"
	MethodListAttempts     = "ListAttempts"
)

// EngineServiceServer is the server API for the engine service
type EngineServiceServer interface {
	ResolveAttribute(context.Context, *ResolveAttributeRequest) (*ResolveAttributeResponse, error)
	ResolveCharacter(context.Context, *ResolveCharacterRequest) (*ResolveCharacterResponse, error)
	TestAction(context.Context, *TestActionRequest) (*TestActionResponse, error)
	AttemptAction(context.Context, *AttemptActionRequest) (*AttemptActionResponse, error)
	ListAttempts(context.Context, *ListAttemptsRequest) (*ListAttemptsResponse, error)
}

// EngineServiceDesc describes the engine service for grpc.Server
var EngineServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EngineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodResolveAttribute,
			Handler:    unaryHandler(MethodResolveAttribute, EngineServiceServer.ResolveAttribute),
		},
		{
			MethodName: MethodResolveCharacter,
			Handler:    unaryHandler(MethodResolveCharacter, EngineServiceServer.ResolveCharacter),
		},
		{
			MethodName: MethodTestAction,
			Handler:    unaryHandler(MethodTestAction, EngineServiceServer.TestAction),
		},
		{
			MethodName: MethodAttemptAction,
			Handler:    unaryHandler(MethodAttemptAction, EngineServiceServer.AttemptAction),
		},
		{
			MethodName: MethodListAttempts,
			Handler:    unaryHandler(MethodListAttempts, EngineServiceServer.ListAttempts),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "webfg/engine/v1alpha1/engine.json",
}

// RegisterEngineServiceServer registers srv on s
func RegisterEngineServiceServer(s grpc.ServiceRegistrar, srv EngineServiceServer) {
	s.RegisterService(&EngineServiceDesc, srv)
}

// FullMethod returns the gRPC path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler[Req, Resp any](
	method string,
	call func(EngineServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		server := srv.(EngineServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		})
	}
}

// EngineServiceClient is the client API for the engine service
type EngineServiceClient interface {
	ResolveAttribute(ctx context.Context, in *ResolveAttributeRequest, opts ...grpc.CallOption) (*ResolveAttributeResponse, error)
	ResolveCharacter(ctx context.Context, in *ResolveCharacterRequest, opts ...grpc.CallOption) (*ResolveCharacterResponse, error)
	TestAction(ctx context.Context, in *TestActionRequest, opts ...grpc.CallOption) (*TestActionResponse, error)
	AttemptAction(ctx context.Context, in *AttemptActionRequest, opts ...grpc.CallOption) (*AttemptActionResponse, error)
	ListAttempts(ctx context.Context, in *ListAttemptsRequest, opts ...grpc.CallOption) (*ListAttemptsResponse, error)
}

type engineServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEngineServiceClient creates a client that always speaks the JSON codec
func NewEngineServiceClient(cc grpc.ClientConnInterface) EngineServiceClient {
	return &engineServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineServiceClient) ResolveAttribute(
	ctx context.Context,
	in *ResolveAttributeRequest,
	opts ...grpc.CallOption,
) (*ResolveAttributeResponse, error) {
	return invoke[ResolveAttributeResponse](ctx, c.cc, MethodResolveAttribute, in, opts)
}

func (c *engineServiceClient) ResolveCharacter(
	ctx context.Context,
	in *ResolveCharacterRequest,
	opts ...grpc.CallOption,
) (*ResolveCharacterResponse, error) {
	return invoke[ResolveCharacterResponse](ctx, c.cc, MethodResolveCharacter, in, opts)
}

func (c *engineServiceClient) TestAction(
	ctx context.Context,
	in *TestActionRequest,
	opts ...grpc.CallOption,
) (*TestActionResponse, error) {
	return invoke[TestActionResponse](ctx, c.cc, MethodTestAction, in, opts)
}

func (c *engineServiceClient) AttemptAction(
	ctx context.Context,
	in *AttemptActionRequest,
	opts ...grpc.CallOption,
) (*AttemptActionResponse, error) {
	return invoke[AttemptActionResponse](ctx, c.cc, MethodAttemptAction, in, opts)
}

func (c *engineServiceClient) ListAttempts(
	ctx context.Context,
	in *ListAttemptsRequest,
	opts ...grpc.CallOption,
) (*ListAttemptsResponse, error) {
	return invoke[ListAttemptsResponse](ctx, c.cc, MethodListAttempts, in, opts)
}
