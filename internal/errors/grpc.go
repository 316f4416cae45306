package errors

import (
	"context"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain identifies errors raised by this service in gRPC error details.
const Domain = "github.com/KirkDiggler/rpg-gm-api"

// GRPCStatus returns the gRPC status for any error. Meta is not included;
// use ToGRPCError to carry it.
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	if st, ok := status.FromError(err); ok {
		return st
	}
	return status.New(GetCode(err).GRPCCode(), GetMessage(err))
}

// ToGRPCError converts an error to a gRPC status error. Meta travels as an
// ErrorInfo detail with values rendered as strings.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st := GRPCStatus(err)
	meta := GetMeta(err)
	if len(meta) == 0 {
		return st.Err()
	}

	info := &errdetails.ErrorInfo{
		Reason:   string(GetCode(err)),
		Domain:   Domain,
		Metadata: make(map[string]string, len(meta)),
	}
	for k, v := range meta {
		info.Metadata[k] = fmt.Sprint(v)
	}

	detailed, detailErr := st.WithDetails(info)
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// FromGRPCError converts a gRPC error back into an *Error, restoring meta
// from our own ErrorInfo details.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		for k, v := range info.GetMetadata() {
			out.WithMeta(k, v)
		}
		break
	}

	return out
}

// UnaryServerInterceptor converts errors returned by handlers into gRPC
// status errors.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, ToGRPCError(err)
		}
		return resp, nil
	}
}
