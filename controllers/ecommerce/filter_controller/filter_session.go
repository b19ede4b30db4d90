package filter_controller

import (
	"net/http"

	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/models"
	"github.com/Anvogue-Ecommerce/anvogue-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// PushSessionState godoc
// @Summary Push filter state into a session
// @Description Reconcile an externally owned filter state with the session's committed state. Pushing the same state twice reports changed=false and does not reset pagination; a real change resets the page to 1.
// @Tags Storefront - Filters
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param state body models.FilterState true "Filter state"
// @Success 200 {object} models.ApiResponse{data=models.SessionStateResponse} "Session state reconciled"
// @Failure 400 {object} models.ApiResponse "Malformed filter state"
// @Router /store/filters/session/{sessionId} [post]
func PushSessionState(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var external models.FilterState
	if err := c.ShouldBindJSON(&external); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Malformed filter state"))
		return
	}

	state, changed, page := services.GetFilterSessionService().Push(sessionID, external)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session state reconciled", models.SessionStateResponse{
		SessionID: sessionID,
		State:     state,
		Changed:   changed,
		Page:      page,
	}))
}

// GetSessionState godoc
// @Summary Get a session's committed filter state
// @Tags Storefront - Filters
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} models.ApiResponse{data=models.SessionStateResponse} "Session state fetched"
// @Router /store/filters/session/{sessionId} [get]
func GetSessionState(c *gin.Context) {
	sessionID := c.Param("sessionId")

	state, page := services.GetFilterSessionService().Get(sessionID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session state fetched", models.SessionStateResponse{
		SessionID: sessionID,
		State:     state,
		Page:      page,
	}))
}

// SetSessionPage godoc
// @Summary Record the page a session is viewing
// @Description Advance the session's pagination cursor without touching the filter state. Values below 1 clamp to the first page.
// @Tags Storefront - Filters
// @Accept json
// @Produce json
// @Param sessionId path string true "Session id"
// @Param page body object true "Page payload, e.g. {\"page\": 3}"
// @Success 200 {object} models.ApiResponse{data=models.SessionStateResponse} "Session page updated"
// @Failure 400 {object} models.ApiResponse "Malformed page payload"
// @Router /store/filters/session/{sessionId}/page [patch]
func SetSessionPage(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var body struct {
		Page int `json:"page"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Malformed page payload"))
		return
	}

	page := services.GetFilterSessionService().SetPage(sessionID, body.Page)
	state, _ := services.GetFilterSessionService().Get(sessionID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session page updated", models.SessionStateResponse{
		SessionID: sessionID,
		State:     state,
		Page:      page,
	}))
}

// ClearSessionState godoc
// @Summary Clear a session's filter state
// @Description Reset every facet selection and the price range back to the unconstrained sentinel ("Clear All").
// @Tags Storefront - Filters
// @Produce json
// @Param sessionId path string true "Session id"
// @Success 200 {object} models.ApiResponse{data=models.SessionStateResponse} "Session state cleared"
// @Router /store/filters/session/{sessionId} [delete]
func ClearSessionState(c *gin.Context) {
	sessionID := c.Param("sessionId")

	state := services.GetFilterSessionService().Clear(sessionID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session state cleared", models.SessionStateResponse{
		SessionID: sessionID,
		State:     state,
		Changed:   true,
		Page:      1,
	}))
}
