package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jhalme/ironweek/internal/contexthelpers"
	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/program"
	"github.com/jhalme/ironweek/internal/traininglog"
)

type logSetResponse struct {
	TargetReps    string  `json:"targetReps"`
	PerformedReps int     `json:"performedReps"`
	WeightKg      float64 `json:"weightKg"`
	RPE           float64 `json:"rpe"`
	Completed     bool    `json:"completed"`
}

type logExerciseResponse struct {
	ExerciseID string           `json:"exerciseId"`
	Name       string           `json:"name"`
	Type       string           `json:"type"`
	Muscle     string           `json:"muscle"`
	Sets       []logSetResponse `json:"sets"`
	Completed  bool             `json:"completed"`
}

type logResponse struct {
	ID               string                `json:"id"`
	Date             string                `json:"date"`
	ProgramID        string                `json:"programId,omitempty"`
	SessionID        string                `json:"sessionId,omitempty"`
	Title            string                `json:"title"`
	Status           string                `json:"status"`
	Exercises        []logExerciseResponse `json:"exercises"`
	StartedAt        *time.Time            `json:"startedAt,omitempty"`
	CompletedAt      *time.Time            `json:"completedAt,omitempty"`
	DifficultyRating *int                  `json:"difficultyRating,omitempty"`
}

func (app *application) logStartPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	l, err := app.logService.Start(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, program.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "no current program")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, toLogResponse(l))
}

func (app *application) logGET(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	l, err := app.logService.Get(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, traininglog.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "no log for date")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, toLogResponse(l))
}

type recordSetRequest struct {
	PerformedReps int     `json:"performedReps"`
	WeightKg      float64 `json:"weightKg"`
	RPE           float64 `json:"rpe"`
	Completed     bool    `json:"completed"`
}

func (app *application) logRecordSetPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	exerciseID := r.PathValue("exerciseID")
	setIndex, err := strconv.Atoi(r.PathValue("setIndex"))
	if err != nil {
		app.clientError(w, r, http.StatusNotFound, "invalid set index")
		return
	}

	var req recordSetRequest
	if err = readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	err = app.logService.RecordSet(r.Context(), userID, date, exerciseID, setIndex, traininglog.SetResult{
		PerformedReps: req.PerformedReps,
		WeightKg:      req.WeightKg,
		RPE:           req.RPE,
		Completed:     req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, traininglog.ErrNotFound):
			app.clientError(w, r, http.StatusNotFound, "no log for date")
		case errors.Is(err, traininglog.ErrExerciseNotFound):
			app.clientError(w, r, http.StatusNotFound, "exercise not in log")
		case errors.Is(err, traininglog.ErrSetOutOfRange):
			app.clientError(w, r, http.StatusUnprocessableEntity, "set index out of range")
		default:
			app.serverError(w, r, err)
		}
		return
	}

	app.logFromStore(w, r, userID, date)
}

type addExerciseRequest struct {
	ExerciseID string `json:"exerciseId"`
	Sets       int    `json:"sets"`
	TargetReps string `json:"targetReps"`
}

func (app *application) logAddExercisePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	var req addExerciseRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	err := app.logService.AddExercise(r.Context(), userID, date, req.ExerciseID, req.Sets, req.TargetReps)
	if err != nil {
		switch {
		case errors.Is(err, traininglog.ErrNotFound):
			app.clientError(w, r, http.StatusNotFound, "no log for date")
		case errors.Is(err, traininglog.ErrExerciseNotFound):
			app.clientError(w, r, http.StatusNotFound, "unknown exercise")
		default:
			app.serverError(w, r, err)
		}
		return
	}

	app.logFromStore(w, r, userID, date)
}

func (app *application) logCompletePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	if err := app.logService.Complete(r.Context(), userID, date); err != nil {
		if errors.Is(err, traininglog.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "no log for date")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.logFromStore(w, r, userID, date)
}

func (app *application) logSkipPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	if err := app.logService.Skip(r.Context(), userID, date); err != nil {
		if errors.Is(err, traininglog.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "no log for date")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.logFromStore(w, r, userID, date)
}

type feedbackRequest struct {
	Difficulty int `json:"difficulty"`
}

func (app *application) logFeedbackPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	var req feedbackRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	if err := app.logService.SaveFeedback(r.Context(), userID, date, req.Difficulty); err != nil {
		switch {
		case errors.Is(err, traininglog.ErrNotFound):
			app.clientError(w, r, http.StatusNotFound, "no log for date")
		case errors.Is(err, traininglog.ErrInvalidDifficulty):
			app.clientError(w, r, http.StatusUnprocessableEntity, "difficulty must be between 1 and 5")
		default:
			app.serverError(w, r, err)
		}
		return
	}

	app.logFromStore(w, r, userID, date)
}

// logFromStore writes the current stored log as the response after a
// mutation so clients always see the rederived status.
func (app *application) logFromStore(w http.ResponseWriter, r *http.Request, userID string, date time.Time) {
	l, err := app.logService.Get(r.Context(), userID, date)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, toLogResponse(l))
}

func toLogResponse(l traininglog.TrainingLog) logResponse {
	exercises := make([]logExerciseResponse, 0, len(l.Exercises))
	for _, ex := range l.Exercises {
		sets := make([]logSetResponse, 0, len(ex.Sets))
		for _, s := range ex.Sets {
			sets = append(sets, logSetResponse{
				TargetReps:    s.TargetReps,
				PerformedReps: s.PerformedReps,
				WeightKg:      s.WeightKg,
				RPE:           s.RPE,
				Completed:     s.Completed,
			})
		}
		exercises = append(exercises, logExerciseResponse{
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			Type:       string(ex.Type),
			Muscle:     string(ex.Muscle),
			Sets:       sets,
			Completed:  ex.Completed,
		})
	}

	return logResponse{
		ID:               l.ID,
		Date:             l.Date.Format(time.DateOnly),
		ProgramID:        l.ProgramID,
		SessionID:        l.SessionID,
		Title:            l.Title,
		Status:           string(l.Status),
		Exercises:        exercises,
		StartedAt:        l.StartedAt,
		CompletedAt:      l.CompletedAt,
		DifficultyRating: l.DifficultyRating,
	}
}
