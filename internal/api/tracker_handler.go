package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/service"
	"holistic/wellness-app/internal/wellness"

	"github.com/gin-gonic/gin"
)

// TrackerHandler exposes the weight-management engine over HTTP.
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// --- Request/Response Structs ---

type CalculateRequest struct {
	HeightValue  float64 `json:"heightValue"`
	HeightUnit   string  `json:"heightUnit" binding:"required,oneof=cm ft_in"`
	HeightFeet   int     `json:"heightFeet"`
	HeightInches int     `json:"heightInches"`

	WeightValue float64 `json:"weightValue" binding:"required"`
	WeightUnit  string  `json:"weightUnit" binding:"required,oneof=kg lb"`

	Age           int    `json:"age" binding:"required"`
	Sex           string `json:"sex" binding:"required,oneof=male female"`
	ActivityLevel string `json:"activityLevel" binding:"required,oneof=sedentary light moderate active veryActive"`

	// Optional; zero means "use the recommended goal weight".
	GoalWeightValue float64 `json:"goalWeightValue"`
}

type RecordEntryRequest struct {
	// Date is ISO yyyy-mm-dd; empty means today.
	Date           string `json:"date"`
	ActualCalories *int   `json:"actualCalories" binding:"required"`
}

// --- Handler Methods ---

// CalculatePlan godoc
// @Summary Calculate a weight-management plan
// @Description Runs the BMI / BMR / calorie-target pipeline over the submitted profile and stores the resulting plan, replacing any previous one.
// @Tags Tracker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body CalculateRequest true "Body measurements and activity level"
// @Success 200 {object} domain.Plan "Calculated plan"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /tracker/calculate [post]
func (h *TrackerHandler) CalculatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile := domain.Profile{
		HeightValue:     req.HeightValue,
		HeightUnit:      domain.HeightUnit(req.HeightUnit),
		HeightFeet:      req.HeightFeet,
		HeightInches:    req.HeightInches,
		WeightValue:     req.WeightValue,
		WeightUnit:      domain.WeightUnit(req.WeightUnit),
		Age:             req.Age,
		Sex:             domain.Sex(req.Sex),
		ActivityLevel:   domain.ActivityLevel(req.ActivityLevel),
		GoalWeightValue: req.GoalWeightValue,
	}

	plan, err := h.trackerService.Calculate(c.Request.Context(), userID, profile)
	if err != nil {
		var vErr *wellness.ValidationError
		if errors.As(err, &vErr) {
			abortWithError(c, http.StatusBadRequest, vErr.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to calculate plan.")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetOverview godoc
// @Summary Get my tracker
// @Description Returns the stored profile, plan and entry history (most recent first). Users who never calculated get an empty tracker.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Tracker
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /tracker [get]
func (h *TrackerHandler) GetOverview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tracker, err := h.trackerService.Overview(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve tracker.")
		return
	}

	c.JSON(http.StatusOK, tracker)
}

// RecordEntry godoc
// @Summary Record a day's calorie intake
// @Description Classifies the intake against the plan's daily target and stores it. A second entry for the same date replaces the first.
// @Tags Tracker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body RecordEntryRequest true "Date and actual calories"
// @Success 200 {object} domain.DailyEntry
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "No plan calculated yet"
// @Router /tracker/entries [post]
func (h *TrackerHandler) RecordEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	entry, err := h.trackerService.RecordEntry(c.Request.Context(), userID, date, *req.ActualCalories)
	if err != nil {
		var vErr *wellness.ValidationError
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.As(err, &vErr):
			abortWithError(c, http.StatusBadRequest, vErr.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record entry.")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetEntries godoc
// @Summary List daily entries
// @Description Returns the entry history, most recent first by default. Pass ?order=chronological for ascending order.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Param order query string false "recent (default) or chronological"
// @Success 200 {array} domain.DailyEntry
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /tracker/entries [get]
func (h *TrackerHandler) GetEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	order := service.OrderRecentFirst
	if c.Query("order") == "chronological" {
		order = service.OrderChronological
	}

	entries, err := h.trackerService.Entries(c.Request.Context(), userID, order)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve entries.")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetWeeklyStats godoc
// @Summary Weekly statistics
// @Description Aggregates the most recent week of entries: averages, surplus, expected weight change and timeline progress.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} wellness.WeeklyStats
// @Failure 404 {object} gin.H "No plan calculated yet"
// @Router /tracker/stats/weekly [get]
func (h *TrackerHandler) GetWeeklyStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.trackerService.WeeklyStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute weekly stats.")
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetMonthlyStats godoc
// @Summary Monthly statistics
// @Description Aggregates the current calendar month's entries. Returns an empty object when nothing was logged this month.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} wellness.MonthlyStats
// @Failure 404 {object} gin.H "No plan calculated yet"
// @Router /tracker/stats/monthly [get]
func (h *TrackerHandler) GetMonthlyStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.trackerService.MonthlyStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute monthly stats.")
		}
		return
	}
	if stats == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetWeeklyProgress godoc
// @Summary Week-by-week progress
// @Description Splits the history into consecutive 7-entry weeks (up to 4) with a per-week success rate.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {array} wellness.WeekSummary
// @Failure 404 {object} gin.H "No plan calculated yet"
// @Router /tracker/progress [get]
func (h *TrackerHandler) GetWeeklyProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	weeks, err := h.trackerService.WeeklyProgress(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute progress.")
		}
		return
	}
	if weeks == nil {
		c.JSON(http.StatusOK, []wellness.WeekSummary{})
		return
	}

	c.JSON(http.StatusOK, weeks)
}

// Reset godoc
// @Summary Reset the tracker
// @Description Deletes the plan and the whole entry history. Irreversible.
// @Tags Tracker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Tracker reset"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /tracker [delete]
func (h *TrackerHandler) Reset(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.trackerService.Reset(c.Request.Context(), userID); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to reset tracker.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tracker has been reset."})
}
