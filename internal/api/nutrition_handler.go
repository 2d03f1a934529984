package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// NutritionHandler exposes the food log over HTTP.
type NutritionHandler struct {
	nutritionService service.NutritionService
}

// NewNutritionHandler creates a new NutritionHandler.
func NewNutritionHandler(nutritionService service.NutritionService) *NutritionHandler {
	return &NutritionHandler{nutritionService: nutritionService}
}

// --- Request/Response Structs ---

type AddNutritionRequest struct {
	FoodItem string  `json:"foodItem" binding:"required"`
	Calories int     `json:"calories" binding:"required,min=1"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fats     float64 `json:"fats" binding:"min=0"`
	MealType string  `json:"mealType" binding:"omitempty,oneof=breakfast lunch dinner snack"`
}

type NutritionEntryResponse struct {
	ID       string    `json:"id"`
	FoodItem string    `json:"foodItem"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fats     float64   `json:"fats"`
	MealType string    `json:"mealType,omitempty"`
	Date     time.Time `json:"date"`
}

// --- Handler Methods ---

// AddEntry godoc
// @Summary Log a food item
// @Tags Nutrition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body AddNutritionRequest true "Food item with calories and macros"
// @Success 201 {object} NutritionEntryResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /nutrition [post]
func (h *NutritionHandler) AddEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.nutritionService.Add(c.Request.Context(), userID, req.FoodItem, req.Calories, req.Protein, req.Carbs, req.Fats, domain.MealType(req.MealType))
	if err != nil {
		if errors.Is(err, service.ErrNutritionInvalid) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log food item.")
		}
		return
	}

	c.JSON(http.StatusCreated, MapNutritionEntryToResponse(entry))
}

// ListEntries godoc
// @Summary List my recent food log
// @Description Returns the most recent food entries, newest first.
// @Tags Nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {array} NutritionEntryResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /nutrition [get]
func (h *NutritionHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.nutritionService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve food log.")
		return
	}

	resp := make([]NutritionEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, MapNutritionEntryToResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// TodaySummary godoc
// @Summary Today's intake totals
// @Description Totals calories and macros logged since local midnight.
// @Tags Nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.NutritionSummary
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /nutrition/today [get]
func (h *NutritionHandler) TodaySummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := h.nutritionService.TodaySummary(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute today's summary.")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// MapNutritionEntryToResponse converts a domain NutritionEntry to its DTO.
func MapNutritionEntryToResponse(e *domain.NutritionEntry) NutritionEntryResponse {
	if e == nil {
		return NutritionEntryResponse{}
	}
	return NutritionEntryResponse{
		ID:       e.ID.Hex(),
		FoodItem: e.FoodItem,
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fats:     e.Fats,
		MealType: string(e.MealType),
		Date:     e.Date,
	}
}
