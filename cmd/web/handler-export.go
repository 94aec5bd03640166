package main

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/jhalme/ironweek/internal/contexthelpers"
)

// exportUserDataGET builds a SQLite database holding only the current user's
// rows and serves it as a download.
func (app *application) exportUserDataGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.CurrentUserID(r.Context())

	dbPath, err := app.db.ExportUserDB(r.Context(), userID, app.exportPath)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	defer func() {
		_ = os.Remove(dbPath)
	}()

	w.Header().Set("Content-Type", "application/vnd.sqlite3")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(dbPath)+`"`)
	http.ServeFile(w, r, dbPath)
}
