package main

import "net/http"

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next))))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.sessionUser(app.logRequest(secureHeaders(app.crossOriginProtection(
					commonContext(app.timeout(next)))))))))
		}
	)

	mux.Handle("POST /programs", session(http.HandlerFunc(app.programGeneratePOST)))
	mux.Handle("GET /programs/current", session(http.HandlerFunc(app.programCurrentGET)))
	mux.Handle("POST /programs/current/adapt", session(http.HandlerFunc(app.programAdaptPOST)))

	mux.Handle("POST /logs/{date}/start", session(http.HandlerFunc(app.logStartPOST)))
	mux.Handle("GET /logs/{date}", session(http.HandlerFunc(app.logGET)))
	mux.Handle("POST /logs/{date}/exercises/{exerciseID}/sets/{setIndex}",
		session(http.HandlerFunc(app.logRecordSetPOST)))
	mux.Handle("POST /logs/{date}/exercises", session(http.HandlerFunc(app.logAddExercisePOST)))
	mux.Handle("POST /logs/{date}/complete", session(http.HandlerFunc(app.logCompletePOST)))
	mux.Handle("POST /logs/{date}/skip", session(http.HandlerFunc(app.logSkipPOST)))
	mux.Handle("POST /logs/{date}/feedback", session(http.HandlerFunc(app.logFeedbackPOST)))

	mux.Handle("GET /analytics/summary", session(http.HandlerFunc(app.analyticsSummaryGET)))
	mux.Handle("GET /analytics/nutrition", session(http.HandlerFunc(app.nutritionSummaryGET)))
	mux.Handle("POST /nutrition/{date}", session(http.HandlerFunc(app.nutritionRecordPOST)))

	mux.Handle("GET /exercises/{id}", session(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("POST /api/language", session(http.HandlerFunc(app.languagePOST)))
	mux.Handle("GET /export", session(http.HandlerFunc(app.exportUserDataGET)))
	mux.Handle("GET /api/healthy", base(http.HandlerFunc(app.healthy)))

	return mux
}
