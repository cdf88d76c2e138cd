// Package v1handler implements the v1 REST surface: chi routes, JSON request
// decoding, response encoding and bearer authentication.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"cosmic/internal/catalog"
	"cosmic/pkg/domain"
	"cosmic/pkg/logger"
	"cosmic/pkg/serrors"
	"cosmic/pkg/storage"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog catalog.Catalog
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Code    string
	Message string
	// Field names the offending request field, when known.
	Field string
}

// Encode writes the error as {"code","message","field"}; field is omitted when empty.
func (e ErrorResponse) Encode(enc *jx.Encoder) {
	enc.ObjStart()
	enc.FieldStart("code")
	enc.Str(e.Code)
	enc.FieldStart("message")
	enc.Str(e.Message)
	if e.Field != "" {
		enc.FieldStart("field")
		enc.Str(e.Field)
	}
	enc.ObjEnd()
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var (
	statusByKind = map[serrors.Kind]int{
		serrors.ErrNotFound:     http.StatusNotFound,
		serrors.ErrUnauthorized: http.StatusUnauthorized,
		serrors.ErrForbidden:    http.StatusForbidden,
		serrors.ErrBadRequest:   http.StatusBadRequest,
		serrors.ErrConflict:     http.StatusConflict,
		serrors.ErrInternal:     http.StatusInternalServerError,
		serrors.ErrTimeout:      http.StatusGatewayTimeout,
		serrors.ErrUnavailable:  http.StatusServiceUnavailable,
		serrors.ErrRateLimited:  http.StatusTooManyRequests,
	}
	defaultMessages = map[serrors.Kind]string{
		serrors.ErrNotFound:     "resource not found",
		serrors.ErrUnauthorized: "unauthorized",
		serrors.ErrForbidden:    "forbidden",
		serrors.ErrBadRequest:   "bad request",
		serrors.ErrConflict:     "conflict",
		serrors.ErrInternal:     "internal error",
		serrors.ErrTimeout:      "request timed out",
		serrors.ErrUnavailable:  "service unavailable",
		serrors.ErrRateLimited:  "too many requests",
	}
)

// newError converts err into the response sent to the client. Internal
// errors are logged and never expose their cause.
func newError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		kind, status = serrors.ErrInternal, http.StatusInternalServerError
	}

	res := &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: defaultMessages[kind]},
	}
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return res
	}
	logger.Debug(ctx, "request rejected", zap.Error(err))

	if msg := serrors.MessageOf(err); msg != "" {
		res.Response.Message = msg
	}
	if fe, ok := domain.AsFieldError(err); ok {
		res.Response.Field = fe.Field
		res.Response.Message = fe.Message
	} else if ce, ok := storage.AsConstraintError(err); ok && ce.Column != "" {
		res.Response.Field = ce.Column
	}

	return res
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response.Encode)
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func writeList[T domain.Encoder](w http.ResponseWriter, items []T) {
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { domain.EncodeList(e, items) })
}

// badRequest wraps a decoding failure.
func badRequest(err error, msg string) error {
	var se *serrors.Error
	if errors.As(err, &se) {
		return err
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
}
