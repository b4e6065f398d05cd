package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AlarmController struct{ ac AlarmUseCase }

func NewAlarmController(ac AlarmUseCase) *AlarmController { return &AlarmController{ac: ac} }

func (ctl *AlarmController) ListAlarms(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	alarms, err := ctl.ac.ListAlarms(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alarms": alarms})
}
