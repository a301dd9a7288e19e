package handler

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func requiredString(req *structpb.Struct, name string) (string, error) {
	v, err := optionalString(req, name)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	return v, nil
}

func optionalString(req *structpb.Struct, name string) (string, error) {
	field, ok := req.GetFields()[name]
	if !ok {
		return "", nil
	}
	if _, isNull := field.GetKind().(*structpb.Value_NullValue); isNull {
		return "", nil
	}

	s, ok := field.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "%s must be a string", name)
	}
	return s.StringValue, nil
}

func numberMap(req *structpb.Struct, name string) (map[string]float64, error) {
	field, ok := req.GetFields()[name]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}

	obj, ok := field.GetKind().(*structpb.Value_StructValue)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be an object", name)
	}

	out := make(map[string]float64, len(obj.StructValue.GetFields()))
	for key, v := range obj.StructValue.GetFields() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "%s.%s must be a number", name, key)
		}
		out[key] = n.NumberValue
	}
	return out, nil
}

func response(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build response: %w", err)
	}
	return s, nil
}
