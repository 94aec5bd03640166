package main

import (
	"net/http"
	"time"

	"github.com/jhalme/ironweek/internal/catalog"
	"github.com/jhalme/ironweek/internal/contexthelpers"
	"github.com/jhalme/ironweek/internal/errors"
	"github.com/jhalme/ironweek/internal/program"
)

type preferencesRequest struct {
	DaysPerWeek       int      `json:"daysPerWeek"`
	PreferredWeekdays []int    `json:"preferredWeekdays"`
	SessionMinutes    int      `json:"sessionMinutes"`
	Equipment         []string `json:"equipment"`
	Goal              string   `json:"goal"`
	Experience        string   `json:"experience"`
}

type exerciseResponse struct {
	ExerciseID  string `json:"exerciseId,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Muscle      string `json:"muscle,omitempty"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"restSeconds"`
}

type sessionResponse struct {
	ID              string             `json:"id"`
	Weekday         int                `json:"weekday"`
	Title           string             `json:"title"`
	Focus           string             `json:"focus"`
	DurationMinutes int                `json:"durationMinutes"`
	Intensity       string             `json:"intensity"`
	Warmup          []exerciseResponse `json:"warmup"`
	MainLifts       []exerciseResponse `json:"mainLifts"`
	Accessories     []exerciseResponse `json:"accessories"`
	Cooldown        []exerciseResponse `json:"cooldown"`
	Tags            []string           `json:"tags"`
	Rationale       string             `json:"rationale"`
}

type adaptationResponse struct {
	AppliedAt      time.Time `json:"appliedAt"`
	ReadinessScore int       `json:"readinessScore"`
	Kind           string    `json:"kind"`
}

type diagnosticsResponse struct {
	ValidationPassed  bool   `json:"validationPassed"`
	FallbackTriggered bool   `json:"fallbackTriggered"`
	FallbackReason    string `json:"fallbackReason,omitempty"`
	SplitRationale    string `json:"splitRationale"`
}

type programResponse struct {
	ID          string               `json:"id"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Split       string               `json:"split"`
	Sessions    []sessionResponse    `json:"sessions"`
	Adaptations []adaptationResponse `json:"adaptations"`
	Diagnostics diagnosticsResponse  `json:"diagnostics"`
}

func (app *application) programGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	prefs := program.Preferences{
		DaysPerWeek:       req.DaysPerWeek,
		PreferredWeekdays: toWeekdays(req.PreferredWeekdays),
		SessionMinutes:    req.SessionMinutes,
		Equipment:         toEquipment(req.Equipment),
		Goal:              program.Goal(req.Goal),
		Experience:        catalog.Difficulty(req.Experience),
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	p, err := app.programService.Generate(r.Context(), userID, prefs)
	if err != nil {
		if errors.Is(err, program.ErrInvalidPreferences) {
			app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, toProgramResponse(p))
}

func (app *application) programCurrentGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.CurrentUserID(r.Context())
	p, err := app.programService.Current(r.Context(), userID)
	if err != nil {
		if errors.Is(err, program.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "no current program")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, toProgramResponse(p))
}

type adaptRequest struct {
	Readiness int `json:"readiness"`
}

func (app *application) programAdaptPOST(w http.ResponseWriter, r *http.Request) {
	var req adaptRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	p, err := app.programService.AdaptToReadiness(r.Context(), userID, req.Readiness)
	if err != nil {
		switch {
		case errors.Is(err, program.ErrInvalidReadiness):
			app.clientError(w, r, http.StatusUnprocessableEntity, "readiness must be between 0 and 100")
		case errors.Is(err, program.ErrNotFound):
			app.clientError(w, r, http.StatusNotFound, "no current program")
		default:
			app.serverError(w, r, err)
		}
		return
	}

	app.writeJSON(w, r, http.StatusOK, toProgramResponse(p))
}

func toWeekdays(days []int) []time.Weekday {
	if days == nil {
		return nil
	}
	weekdays := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		weekdays = append(weekdays, time.Weekday(d))
	}
	return weekdays
}

func toEquipment(names []string) []catalog.Equipment {
	if names == nil {
		return nil
	}
	equipment := make([]catalog.Equipment, 0, len(names))
	for _, n := range names {
		equipment = append(equipment, catalog.Equipment(n))
	}
	return equipment
}

func toExerciseResponses(instances []program.ExerciseInstance) []exerciseResponse {
	out := make([]exerciseResponse, 0, len(instances))
	for _, ex := range instances {
		out = append(out, exerciseResponse{
			ExerciseID:  ex.ExerciseID,
			Name:        ex.Name,
			Type:        string(ex.Type),
			Muscle:      string(ex.Muscle),
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			RestSeconds: ex.RestSeconds,
		})
	}
	return out
}

func toProgramResponse(p program.Program) programResponse {
	sessions := make([]sessionResponse, 0, len(p.Sessions))
	for _, s := range p.Sessions {
		sessions = append(sessions, sessionResponse{
			ID:              s.ID,
			Weekday:         int(s.Weekday),
			Title:           s.Title,
			Focus:           s.Focus,
			DurationMinutes: s.DurationMinutes,
			Intensity:       s.Intensity,
			Warmup:          toExerciseResponses(s.Warmup),
			MainLifts:       toExerciseResponses(s.MainLifts),
			Accessories:     toExerciseResponses(s.Accessories),
			Cooldown:        toExerciseResponses(s.Cooldown),
			Tags:            s.Tags,
			Rationale:       s.Rationale,
		})
	}

	adaptations := make([]adaptationResponse, 0, len(p.Adaptations))
	for _, a := range p.Adaptations {
		adaptations = append(adaptations, adaptationResponse{
			AppliedAt:      a.AppliedAt,
			ReadinessScore: a.ReadinessScore,
			Kind:           a.Kind,
		})
	}

	return programResponse{
		ID:          p.ID,
		GeneratedAt: p.GeneratedAt,
		Split:       string(p.Split),
		Sessions:    sessions,
		Adaptations: adaptations,
		Diagnostics: diagnosticsResponse{
			ValidationPassed:  p.Diagnostics.ValidationPassed,
			FallbackTriggered: p.Diagnostics.FallbackTriggered,
			FallbackReason:    p.Diagnostics.FallbackReason,
			SplitRationale:    p.Diagnostics.SplitRationale,
		},
	}
}
