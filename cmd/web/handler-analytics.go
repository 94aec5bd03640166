package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jhalme/ironweek/internal/analytics"
	"github.com/jhalme/ironweek/internal/contexthelpers"
	"github.com/jhalme/ironweek/internal/errors"
)

// defaultSummaryWindow is how far back the summary reaches when the client
// doesn't pass a from date.
const defaultSummaryWindow = 28 * 24 * time.Hour

type timelinePointResponse struct {
	PeriodStart string  `json:"periodStart"`
	Volume      float64 `json:"volume"`
	Sessions    int     `json:"sessions"`
}

type muscleVolumeResponse struct {
	Muscle string `json:"muscle"`
	Sets   int    `json:"sets"`
}

type insightResponse struct {
	Kind      string `json:"kind"`
	Sentiment string `json:"sentiment"`
	Message   string `json:"message"`
}

type summaryResponse struct {
	TotalVolume      float64                 `json:"totalVolume"`
	AdherencePercent int                     `json:"adherencePercent"`
	IntensityScore   int                     `json:"intensityScore"`
	BestStreak       int                     `json:"bestStreak"`
	Timeline         []timelinePointResponse `json:"timeline"`
	MuscleSplit      []muscleVolumeResponse  `json:"muscleSplit"`
	Insights         []insightResponse       `json:"insights"`
	CoachingNote     string                  `json:"coachingNote,omitempty"`
}

func (app *application) analyticsSummaryGET(w http.ResponseWriter, r *http.Request) {
	since, ok := app.parseSinceParam(w, r)
	if !ok {
		return
	}

	period := analytics.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = analytics.PeriodWeek
	}
	switch period {
	case analytics.PeriodDay, analytics.PeriodWeek, analytics.PeriodMonth:
	default:
		app.clientError(w, r, http.StatusUnprocessableEntity, "period must be day, week or month")
		return
	}

	ctx := r.Context()
	userID := contexthelpers.CurrentUserID(ctx)
	summary, err := app.analyticsService.Summarize(ctx, userID, since, period, contexthelpers.Language(ctx))
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	resp := toSummaryResponse(summary)

	// The coaching note is best effort. A failed AI call never fails the summary.
	if note, noteErr := app.aiClient.CoachingNote(ctx, summary); noteErr != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "coaching note generation failed", errors.SlogError(noteErr))
	} else {
		resp.CoachingNote = note
	}

	app.writeJSON(w, r, http.StatusOK, resp)
}

type nutritionRequest struct {
	CaloriesTarget   int     `json:"caloriesTarget"`
	CaloriesConsumed int     `json:"caloriesConsumed"`
	ProteinGrams     float64 `json:"proteinGrams"`
	CarbsGrams       float64 `json:"carbsGrams"`
	FatGrams         float64 `json:"fatGrams"`
	Completed        bool    `json:"completed"`
}

func (app *application) nutritionRecordPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	var req nutritionRequest
	if err := readJSON(r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	err := app.analyticsService.RecordNutrition(r.Context(), userID, analytics.NutritionLog{
		Date:             date,
		CaloriesTarget:   req.CaloriesTarget,
		CaloriesConsumed: req.CaloriesConsumed,
		ProteinGrams:     req.ProteinGrams,
		CarbsGrams:       req.CarbsGrams,
		FatGrams:         req.FatGrams,
		Completed:        req.Completed,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type nutritionSummaryResponse struct {
	AvgCalorieAdherence int     `json:"avgCalorieAdherence"`
	BestStreak          int     `json:"bestStreak"`
	TotalProteinGrams   float64 `json:"totalProteinGrams"`
	TotalCarbsGrams     float64 `json:"totalCarbsGrams"`
	TotalFatGrams       float64 `json:"totalFatGrams"`
}

func (app *application) nutritionSummaryGET(w http.ResponseWriter, r *http.Request) {
	since, ok := app.parseSinceParam(w, r)
	if !ok {
		return
	}

	userID := contexthelpers.CurrentUserID(r.Context())
	summary, err := app.analyticsService.SummarizeNutrition(r.Context(), userID, since)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, nutritionSummaryResponse{
		AvgCalorieAdherence: summary.AvgCalorieAdherence,
		BestStreak:          summary.BestStreak,
		TotalProteinGrams:   summary.TotalProteinGrams,
		TotalCarbsGrams:     summary.TotalCarbsGrams,
		TotalFatGrams:       summary.TotalFatGrams,
	})
}

// parseSinceParam reads the optional from query parameter. An absent value
// falls back to the default summary window.
func (app *application) parseSinceParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	fromStr := r.URL.Query().Get("from")
	if fromStr == "" {
		return time.Now().Add(-defaultSummaryWindow), true
	}
	since, err := time.Parse(time.DateOnly, fromStr)
	if err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity, "from must be a YYYY-MM-DD date")
		return time.Time{}, false
	}
	return since, true
}

func toSummaryResponse(s analytics.Summary) summaryResponse {
	timeline := make([]timelinePointResponse, 0, len(s.Timeline))
	for _, p := range s.Timeline {
		timeline = append(timeline, timelinePointResponse{
			PeriodStart: p.PeriodStart.Format(time.DateOnly),
			Volume:      p.Volume,
			Sessions:    p.Sessions,
		})
	}

	muscleSplit := make([]muscleVolumeResponse, 0, len(s.MuscleSplit))
	for _, mv := range s.MuscleSplit {
		muscleSplit = append(muscleSplit, muscleVolumeResponse{Muscle: string(mv.Muscle), Sets: mv.Sets})
	}

	insights := make([]insightResponse, 0, len(s.Insights))
	for _, in := range s.Insights {
		insights = append(insights, insightResponse{
			Kind:      in.Kind,
			Sentiment: string(in.Sentiment),
			Message:   in.Message,
		})
	}

	return summaryResponse{
		TotalVolume:      s.TotalVolume,
		AdherencePercent: s.AdherencePercent,
		IntensityScore:   s.IntensityScore,
		BestStreak:       s.BestStreak,
		Timeline:         timeline,
		MuscleSplit:      muscleSplit,
		Insights:         insights,
	}
}
