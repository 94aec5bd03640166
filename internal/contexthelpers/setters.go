package contexthelpers

import (
	"context"
	"net/http"

	"github.com/jhalme/ironweek/internal/i18n"
)

func SetCurrentUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentUserIDContextKey, userID)
	return r.WithContext(ctx)
}

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	ctx := context.WithValue(r.Context(), CspNonceContextKey, cspNonce)
	return r.WithContext(ctx)
}

func SetLanguage(r *http.Request, language i18n.Language) *http.Request {
	ctx := context.WithValue(r.Context(), LanguageContextKey, language)
	return r.WithContext(ctx)
}
