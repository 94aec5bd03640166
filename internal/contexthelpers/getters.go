package contexthelpers

import (
	"context"

	"github.com/jhalme/ironweek/internal/i18n"
)

// CurrentUserID returns the session user id or an empty string when the
// request carries no user.
func CurrentUserID(ctx context.Context) string {
	userID, ok := ctx.Value(CurrentUserIDContextKey).(string)
	if !ok {
		return ""
	}

	return userID
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(CspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}

func Language(ctx context.Context) i18n.Language {
	lang, ok := ctx.Value(LanguageContextKey).(i18n.Language)
	if !ok {
		return i18n.DefaultLanguage
	}
	return lang
}
