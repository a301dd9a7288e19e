package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const AuthServiceName = "diagnosis.v1.Auth"

const (
	AuthRegisterFullMethod            = "/diagnosis.v1.Auth/Register"
	AuthLoginFullMethod               = "/diagnosis.v1.Auth/Login"
	AuthLogoutFullMethod              = "/diagnosis.v1.Auth/Logout"
	AuthSessionFullMethod             = "/diagnosis.v1.Auth/Session"
	AuthRequestVerificationFullMethod = "/diagnosis.v1.Auth/RequestVerification"
	AuthConfirmVerificationFullMethod = "/diagnosis.v1.Auth/ConfirmVerification"
)

// AuthServer is the server API for the diagnosis.v1.Auth service.
type AuthServer interface {
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Session(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RequestVerification(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ConfirmVerification(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: unary[AuthServer](AuthRegisterFullMethod, AuthServer.Register)},
		{MethodName: "Login", Handler: unary[AuthServer](AuthLoginFullMethod, AuthServer.Login)},
		{MethodName: "Logout", Handler: unary[AuthServer](AuthLogoutFullMethod, AuthServer.Logout)},
		{MethodName: "Session", Handler: unary[AuthServer](AuthSessionFullMethod, AuthServer.Session)},
		{MethodName: "RequestVerification", Handler: unary[AuthServer](AuthRequestVerificationFullMethod, AuthServer.RequestVerification)},
		{MethodName: "ConfirmVerification", Handler: unary[AuthServer](AuthConfirmVerificationFullMethod, AuthServer.ConfirmVerification)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

// AuthClient is the client API for the diagnosis.v1.Auth service.
type AuthClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthClient(cc grpc.ClientConnInterface) *AuthClient {
	return &AuthClient{cc: cc}
}

func (c *AuthClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, AuthRegisterFullMethod, in, opts...)
}

func (c *AuthClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, AuthLoginFullMethod, in, opts...)
}

func (c *AuthClient) Logout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, AuthLogoutFullMethod, in, opts...)
}

func (c *AuthClient) Session(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, AuthSessionFullMethod, in, opts...)
}

func (c *AuthClient) RequestVerification(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, AuthRequestVerificationFullMethod, in, opts...)
}

func (c *AuthClient) ConfirmVerification(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, AuthConfirmVerificationFullMethod, in, opts...)
}
