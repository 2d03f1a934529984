package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityHandler exposes the exercise log over HTTP.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// --- Request/Response Structs ---

type AddActivityRequest struct {
	ActivityType    string `json:"activityType" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
	CaloriesBurned  int    `json:"caloriesBurned" binding:"min=0"`
	// Date is ISO yyyy-mm-dd; empty means today.
	Date string `json:"date"`
}

type ActivityResponse struct {
	ID              string    `json:"id"`
	ActivityType    string    `json:"activityType"`
	DurationMinutes int       `json:"durationMinutes"`
	CaloriesBurned  int       `json:"caloriesBurned"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
}

// --- Handler Methods ---

// ListActivities godoc
// @Summary List my logged activities
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ActivityResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	activities, err := h.activityService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve activities.")
		return
	}

	resp := make([]ActivityResponse, 0, len(activities))
	for i := range activities {
		resp = append(resp, MapActivityToResponse(&activities[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AddActivity godoc
// @Summary Log an activity
// @Tags Activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param activity body AddActivityRequest true "Activity details"
// @Success 201 {object} ActivityResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /activities [post]
func (h *ActivityHandler) AddActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected yyyy-mm-dd.")
			return
		}
		date = parsed
	}

	activity, err := h.activityService.Add(c.Request.Context(), userID, req.ActivityType, req.DurationMinutes, req.CaloriesBurned, date)
	if err != nil {
		if errors.Is(err, service.ErrActivityInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log activity.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapActivityToResponse(activity))
}

// DeleteActivity godoc
// @Summary Delete one of my activities
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param id path string true "Activity ObjectID Hex"
// @Success 200 {object} gin.H "Activity deleted"
// @Failure 403 {object} gin.H "Not the owner"
// @Failure 404 {object} gin.H "Activity not found"
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	activityID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid activity ID format.")
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), userID, activityID); err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrActivityAccessDenied):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete activity.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted."})
}

// MapActivityToResponse converts a domain Activity to its DTO.
func MapActivityToResponse(a *domain.Activity) ActivityResponse {
	if a == nil {
		return ActivityResponse{}
	}
	return ActivityResponse{
		ID:              a.ID.Hex(),
		ActivityType:    a.ActivityType,
		DurationMinutes: a.DurationMinutes,
		CaloriesBurned:  a.CaloriesBurned,
		Date:            a.Date,
		CreatedAt:       a.CreatedAt,
	}
}
