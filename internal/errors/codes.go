package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error independently of the transport that reports it.
type Code string

// Error codes. The set mirrors gRPC so every code survives a round trip.
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

type transport struct {
	http int
	grpc codes.Code
}

var transports = map[Code]transport{
	CodeOK:                 {http.StatusOK, codes.OK},
	CodeCanceled:           {http.StatusRequestTimeout, codes.Canceled},
	CodeInvalidArgument:    {http.StatusBadRequest, codes.InvalidArgument},
	CodeDeadlineExceeded:   {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	CodeNotFound:           {http.StatusNotFound, codes.NotFound},
	CodeAlreadyExists:      {http.StatusConflict, codes.AlreadyExists},
	CodePermissionDenied:   {http.StatusForbidden, codes.PermissionDenied},
	CodeResourceExhausted:  {http.StatusTooManyRequests, codes.ResourceExhausted},
	CodeFailedPrecondition: {http.StatusPreconditionFailed, codes.FailedPrecondition},
	CodeAborted:            {http.StatusConflict, codes.Aborted},
	CodeOutOfRange:         {http.StatusBadRequest, codes.OutOfRange},
	CodeUnimplemented:      {http.StatusNotImplemented, codes.Unimplemented},
	CodeInternal:           {http.StatusInternalServerError, codes.Internal},
	CodeUnavailable:        {http.StatusServiceUnavailable, codes.Unavailable},
	CodeDataLoss:           {http.StatusInternalServerError, codes.DataLoss},
	CodeUnauthenticated:    {http.StatusUnauthorized, codes.Unauthenticated},
}

var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(transports))
	for code, t := range transports {
		m[t.grpc] = code
	}
	return m
}()

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the HTTP status for the code. Unknown codes are 500.
func (c Code) HTTPStatus() int {
	if t, ok := transports[c]; ok {
		return t.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC code for the code. Unknown codes map to Unknown.
func (c Code) GRPCCode() codes.Code {
	if t, ok := transports[c]; ok {
		return t.grpc
	}
	return codes.Unknown
}

// IsServerError reports whether the code means the service failed rather
// than the caller.
func (c Code) IsServerError() bool {
	return c.HTTPStatus() >= http.StatusInternalServerError
}

// codeFromGRPC maps a gRPC code back, treating unknown codes as internal.
func codeFromGRPC(c codes.Code) Code {
	if code, ok := fromGRPC[c]; ok {
		return code
	}
	return CodeInternal
}
