package api

import (
	"errors"
	"fmt"
	"net/http"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmotionHandler exposes emotion check-ins and saved tips over HTTP.
type EmotionHandler struct {
	emotionService service.EmotionService
}

// NewEmotionHandler creates a new EmotionHandler.
func NewEmotionHandler(emotionService service.EmotionService) *EmotionHandler {
	return &EmotionHandler{emotionService: emotionService}
}

// --- Request/Response Structs ---

type CheckInRequest struct {
	Input string `json:"input" binding:"required"`
}

type SaveTipsRequest struct {
	Emotion string       `json:"emotion" binding:"required"`
	Tips    []domain.Tip `json:"tips" binding:"required,min=1,dive"`
}

// --- Handler Methods ---

// CheckIn godoc
// @Summary Detect emotion from free text
// @Description Forwards the text to the detector and returns the detected emotion with coping tips. Nothing is stored.
// @Tags Emotion
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body CheckInRequest true "Free-form text describing how the user feels"
// @Success 200 {object} emotion.Detection
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 502 {object} gin.H "Detector unavailable"
// @Router /emotion/check-in [post]
func (h *EmotionHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	detection, err := h.emotionService.CheckIn(c.Request.Context(), req.Input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmotionInputRequired):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEmotionDetection):
			abortWithError(c, http.StatusBadGateway, "Emotion detection is unavailable right now.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to process check-in.")
		}
		return
	}

	c.JSON(http.StatusOK, detection)
}

// SaveTips godoc
// @Summary Save tips from a check-in
// @Tags Emotion
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tips body SaveTipsRequest true "Detected emotion and the tips to keep"
// @Success 201 {array} domain.EmotionTip
// @Failure 400 {object} gin.H "Invalid input"
// @Router /emotion/tips [post]
func (h *EmotionHandler) SaveTips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SaveTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	saved, err := h.emotionService.SaveTips(c.Request.Context(), userID, req.Emotion, req.Tips)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save tips.")
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListSavedTips godoc
// @Summary List my saved tips
// @Tags Emotion
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.EmotionTip
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /emotion/tips [get]
func (h *EmotionHandler) ListSavedTips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tips, err := h.emotionService.SavedTips(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve saved tips.")
		return
	}
	if tips == nil {
		tips = []domain.EmotionTip{}
	}

	c.JSON(http.StatusOK, tips)
}

// DeleteTip godoc
// @Summary Delete one of my saved tips
// @Tags Emotion
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tip ObjectID Hex"
// @Success 200 {object} gin.H "Tip deleted"
// @Failure 404 {object} gin.H "Tip not found"
// @Router /emotion/tips/{id} [delete]
func (h *EmotionHandler) DeleteTip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tipID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid tip ID format.")
		return
	}

	if err := h.emotionService.DeleteTip(c.Request.Context(), userID, tipID); err != nil {
		if errors.Is(err, service.ErrTipNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete tip.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tip deleted."})
}
