// README: Plan handlers (generate, fetch, alternative lookup, apply, share).
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"dayplan/internal/modules/usage"
	"dayplan/internal/planner"
)

// Plan generation rides on a live LLM round trip with search grounding, so
// the handler deadlines are generous.
const (
	generateTimeout    = 90 * time.Second
	alternativeTimeout = 45 * time.Second
)

// PlannerService is the slice of the planner the HTTP layer calls.
type PlannerService interface {
	GeneratePlan(ctx context.Context, prefs planner.Preferences) (planner.TripPlan, error)
	FindAlternative(ctx context.Context, prefs planner.Preferences, plan planner.TripPlan, replace planner.Activity, index int) (planner.Activity, error)
}

// PlanStore is the persistence surface the handlers need.
type PlanStore interface {
	Save(ctx context.Context, prefs planner.Preferences, plan planner.TripPlan) (string, error)
	Get(ctx context.Context, id string) (planner.StoredPlan, error)
	Update(ctx context.Context, id string, plan planner.TripPlan) error
	AcquireAlternativeLock(ctx context.Context, id string) (bool, error)
	ReleaseAlternativeLock(ctx context.Context, id string) error
}

// QuotaService meters plan generations per user.
type QuotaService interface {
	UsePlanCredit(ctx context.Context, uid string) error
}

type PlanHandler struct {
	planner PlannerService
	store   PlanStore
	quota   QuotaService
}

func NewPlanHandler(plannerSvc PlannerService, store PlanStore, quota QuotaService) *PlanHandler {
	return &PlanHandler{planner: plannerSvc, store: store, quota: quota}
}

type createPlanReq struct {
	UID         string              `json:"uid"`
	Preferences planner.Preferences `json:"preferences"`
}

// Create handles POST /api/plans.
func (h *PlanHandler) Create(c *gin.Context) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	if !isValidUID(req.UID) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}
	if msg := validatePreferences(&req.Preferences); msg != "" {
		writeError(c, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	if err := h.quota.UsePlanCredit(ctx, req.UID); err != nil {
		if errors.Is(err, usage.ErrQuotaExceeded) {
			writeError(c, http.StatusTooManyRequests, err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	plan, err := h.planner.GeneratePlan(ctx, req.Preferences)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	id, err := h.store.Save(ctx, req.Preferences, plan)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusCreated, map[string]any{"id": id, "plan": plan})
}

// Get handles GET /api/plans/:id.
func (h *PlanHandler) Get(c *gin.Context) {
	record, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, record)
}

type alternativeReq struct {
	Index int `json:"index"`
}

// FindAlternative handles POST /api/plans/:id/alternative. The suggested
// activity is returned without touching the stored plan; the client applies
// it via ApplyReplacement once accepted.
func (h *PlanHandler) FindAlternative(c *gin.Context) {
	id := c.Param("id")

	var req alternativeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), alternativeTimeout)
	defer cancel()

	record, err := h.store.Get(ctx, id)
	if err != nil {
		writePlannerError(c, err)
		return
	}
	if req.Index < 0 || req.Index >= len(record.Plan.Itinerary) {
		writePlannerError(c, planner.ErrIndexOutOfRange)
		return
	}

	acquired, err := h.store.AcquireAlternativeLock(ctx, id)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	if !acquired {
		writePlannerError(c, planner.ErrAlternativeInFlight)
		return
	}
	// Best effort; the lock expires on its own if the release fails.
	defer func() { _ = h.store.ReleaseAlternativeLock(context.WithoutCancel(ctx), id) }()

	activity, err := h.planner.FindAlternative(ctx, record.Preferences, record.Plan, record.Plan.Itinerary[req.Index], req.Index)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"index": req.Index, "activity": activity})
}

// ApplyReplacement handles PUT /api/plans/:id/activities/:index.
func (h *PlanHandler) ApplyReplacement(c *gin.Context) {
	id := c.Param("id")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid activity index")
		return
	}

	var activity planner.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if activity.TimeOfDay == "" || activity.Title == "" || activity.Description == "" {
		writeError(c, http.StatusBadRequest, "activity missing timeOfDay, title, or description")
		return
	}

	ctx := c.Request.Context()
	record, err := h.store.Get(ctx, id)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	updated, err := planner.ReplaceActivity(record.Plan, index, activity)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	if err := h.store.Update(ctx, id, updated); err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"id": id, "plan": updated})
}

// Share handles POST /api/plans/:id/share.
func (h *PlanHandler) Share(c *gin.Context) {
	record, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePlannerError(c, err)
		return
	}

	token, err := planner.EncodeShare(record.Plan)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"token": token})
}

// Shared handles GET /api/shared/:token. Tokens are self-contained; no
// store lookup happens.
func (h *PlanHandler) Shared(c *gin.Context) {
	plan, err := planner.DecodeShare(c.Param("token"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid share token")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"plan": plan})
}

// validatePreferences rejects requests the model cannot plan from. Returns
// an empty string when the preferences are acceptable.
func validatePreferences(p *planner.Preferences) string {
	p.Location = strings.TrimSpace(p.Location)
	p.Interests = strings.TrimSpace(p.Interests)
	p.TripDate = strings.TrimSpace(p.TripDate)

	if p.Location == "" {
		return "missing location"
	}
	if p.Interests == "" {
		return "missing interests"
	}
	switch p.ActivityType {
	case planner.ActivityTypeIndoor, planner.ActivityTypeOutdoor, planner.ActivityTypeMix:
	default:
		return "activityType must be indoor, outdoor, or mix"
	}
	if p.TripDate == "" {
		p.TripDate = "today"
	}
	if p.TripDate != "today" {
		if _, err := time.Parse("2006-01-02", p.TripDate); err != nil {
			return "tripDate must be \"today\" or a YYYY-MM-DD date"
		}
	}
	return ""
}
