package server

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/langdrill/internal/auth"
	"github.com/at-ishikawa/langdrill/internal/practice"
	"github.com/at-ishikawa/langdrill/internal/questiongen"
	"github.com/at-ishikawa/langdrill/internal/questiontype"
	"github.com/at-ishikawa/langdrill/internal/validation"
	"github.com/at-ishikawa/langdrill/internal/word"
)

// toConnectError maps a service error to a connect error. Messages of client
// errors are kept as they are.
func toConnectError(err error) error {
	var validationErr *validation.Error
	var dataErr *questiongen.DataTemplateError
	var qaErr *questiongen.QuestionAnswerTemplateError

	switch {
	case errors.Is(err, word.ErrNotFound),
		errors.Is(err, questiontype.ErrNotFound),
		errors.Is(err, practice.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, auth.ErrUnauthenticated):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.As(err, &validationErr):
		return invalidArgumentError(validationErr)
	case errors.Is(err, word.ErrEmptyText),
		errors.Is(err, questiontype.ErrEmptyName),
		errors.As(err, &dataErr),
		errors.As(err, &qaErr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		slog.Error("request failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgumentError(err *validation.Error) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)

	fieldViolations := make([]*errdetails.BadRequest_FieldViolation, 0, len(err.Fields))
	for _, f := range err.Fields {
		fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Description,
		})
	}
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: fieldViolations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}
