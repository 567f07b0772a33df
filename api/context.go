package api

import (
	"context"
	"errors"
)

type keyType string

const (
	adminIDKey    keyType = "adminID"
	adminEmailKey keyType = "adminEmail"
)

// ctxWithAdmin adds the authenticated admin's id and email to the context
func ctxWithAdmin(ctx context.Context, adminID, email string) context.Context {
	ctx = context.WithValue(ctx, adminIDKey, adminID)
	return context.WithValue(ctx, adminEmailKey, email)
}

// ctxAdminID retrieves the authenticated admin's id from the context
func ctxAdminID(ctx context.Context) (string, error) {
	return ctxGetStringValue(ctx, adminIDKey)
}

func ctxGetStringValue(ctx context.Context, key keyType) (string, error) {
	ctxValue := ctx.Value(key)
	if ctxValue == nil {
		return "", errors.New("key not found in context")
	}
	valueAsString, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("value is not of type `string`")
	}
	return valueAsString, nil
}
