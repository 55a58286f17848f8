package context

import (
	"context"

	"github.com/anindyaputri/dress-shop/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRole(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}

// IsAdmin reports whether the caller's cached role is admin.
func IsAdmin(ctx context.Context) bool {
	role, ok := GetRole(ctx)
	return ok && role == constant.RoleAdmin
}
