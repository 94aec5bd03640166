package main

import (
	"net/http"

	"github.com/jhalme/ironweek/internal/i18n"
)

type languageRequest struct {
	Language string `json:"language"`
}

// languagePOST stores the preferred language in the session.
func (app *application) languagePOST(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	lang := i18n.Language(req.Language)
	if !i18n.IsSupported(lang) {
		app.clientError(w, r, http.StatusUnprocessableEntity, "unsupported language")
		return
	}

	app.sessionManager.Put(r.Context(), sessionKeyLanguage, string(lang))
	w.WriteHeader(http.StatusNoContent)
}
