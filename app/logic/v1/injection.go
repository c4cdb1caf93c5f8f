package v1

import (
	"context"

	"github.com/daygo-app/daygo/pkg/security"
)

const (
	TOKEN_CONTEXT_KEY = "__daygo.access_token"
	LANGUAGE_KEY      = "__daygo.accept_language"
	APPID_KEY         = "__daygo.appid"
)

func InjectAppid(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(APPID_KEY).(string)
	return val, ok
}

// InjectTokenClaim gets user token claims from context
func InjectTokenClaim(ctx context.Context) (security.TokenClaims, bool) {
	val, ok := ctx.Value(TOKEN_CONTEXT_KEY).(security.TokenClaims)
	return val, ok
}

func InjectLanguage(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(LANGUAGE_KEY).(string)
	return val, ok
}
