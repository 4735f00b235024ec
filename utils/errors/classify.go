package errors

import (
	"context"
	stderrors "errors"

	"feedhub/domain"
)

// FromDomainError classifies an error returned by a usecase.
// ValidationError messages are user-facing and are passed through; everything else gets a generic message.
func FromDomainError(err error, layer, component, operation string) *AppContextError {
	var appErr *AppContextError
	if stderrors.As(err, &appErr) {
		return EnrichWithContext(appErr, layer, component, operation, nil)
	}

	var verr *domain.ValidationError
	switch {
	case stderrors.Is(err, domain.ErrDuplicateFeedURL) && stderrors.As(err, &verr):
		return NewAppContextError(CodeDuplicateFeed, verr.Error(), layer, component, operation, err, map[string]any{"field": verr.Field})
	case stderrors.Is(err, domain.ErrInvalidFeed) && stderrors.As(err, &verr):
		return NewAppContextError(CodeInvalidFeed, verr.Error(), layer, component, operation, err, map[string]any{"field": verr.Field})
	case stderrors.As(err, &verr):
		return NewAppContextError(CodeValidation, verr.Error(), layer, component, operation, err, map[string]any{"field": verr.Field, "rule": verr.Rule})
	case stderrors.Is(err, domain.ErrFeedNotFound), stderrors.Is(err, domain.ErrFeedItemNotFound):
		return NewAppContextError(CodeNotFound, "feed not found", layer, component, operation, err, nil)
	case stderrors.Is(err, domain.ErrFeedAccessDenied):
		return NewAppContextError(CodeForbidden, "feed belongs to another user", layer, component, operation, err, nil)
	case stderrors.Is(err, context.DeadlineExceeded):
		return NewAppContextError(CodeTimeout, "operation timed out", layer, component, operation, err, nil)
	case stderrors.Is(err, domain.ErrUnableToFetch), stderrors.Is(err, domain.ErrInvalidFormat):
		return NewAppContextError(CodeExternalAPI, "feed source could not be read", layer, component, operation, err, nil)
	default:
		return NewAppContextError(CodeUnknown, "an unexpected error occurred", layer, component, operation, err, nil)
	}
}
