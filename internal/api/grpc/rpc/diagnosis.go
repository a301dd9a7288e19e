package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const DiagnosisServiceName = "diagnosis.v1.Diagnosis"

const (
	DiagnosisFeaturesFullMethod = "/diagnosis.v1.Diagnosis/Features"
	DiagnosisPredictFullMethod  = "/diagnosis.v1.Diagnosis/Predict"
)

// DiagnosisServer is the server API for the diagnosis.v1.Diagnosis service.
type DiagnosisServer interface {
	Features(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Predict(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var DiagnosisServiceDesc = grpc.ServiceDesc{
	ServiceName: DiagnosisServiceName,
	HandlerType: (*DiagnosisServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Features", Handler: unary[DiagnosisServer](DiagnosisFeaturesFullMethod, DiagnosisServer.Features)},
		{MethodName: "Predict", Handler: unary[DiagnosisServer](DiagnosisPredictFullMethod, DiagnosisServer.Predict)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterDiagnosisServer(s grpc.ServiceRegistrar, srv DiagnosisServer) {
	s.RegisterService(&DiagnosisServiceDesc, srv)
}

// DiagnosisClient is the client API for the diagnosis.v1.Diagnosis service.
type DiagnosisClient struct {
	cc grpc.ClientConnInterface
}

func NewDiagnosisClient(cc grpc.ClientConnInterface) *DiagnosisClient {
	return &DiagnosisClient{cc: cc}
}

func (c *DiagnosisClient) Features(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, DiagnosisFeaturesFullMethod, in, opts...)
}

func (c *DiagnosisClient) Predict(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, DiagnosisPredictFullMethod, in, opts...)
}
