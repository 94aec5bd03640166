package contexthelpers

type contextKey string

const CurrentUserIDContextKey = contextKey("currentUserID")
const CurrentPathContextKey = contextKey("currentPath")
const CspNonceContextKey = contextKey("cspNonce")
const LanguageContextKey = contextKey("language")
