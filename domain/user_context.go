package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type contextKey string

const OwnerIDContextKey contextKey = "owner_id"

var ErrOwnerNotInContext = errors.New("owner id not found in context")

func SetOwnerID(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, OwnerIDContextKey, ownerID)
}

func GetOwnerID(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := ctx.Value(OwnerIDContextKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, ErrOwnerNotInContext
	}
	return ownerID, nil
}
