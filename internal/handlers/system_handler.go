package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/scheduler"
)

type SystemHandler struct {
	scheduler *scheduler.Scheduler
}

func NewSystemHandler(sched *scheduler.Scheduler) *SystemHandler {
	return &SystemHandler{scheduler: sched}
}

// RunBilling handles POST /api/v1/system/billing/run. It kicks off the daily
// billing sweep in the background so a long run does not hold the request.
func (h *SystemHandler) RunBilling(c *gin.Context) {
	if h.scheduler == nil {
		responses.Fail(c, http.StatusServiceUnavailable, nil, "Scheduler not available")
		return
	}

	go func() {
		if err := h.scheduler.RunNow(); err != nil {
			log.Printf("System: Manual billing run failed: %v", err)
		}
	}()

	responses.Success(c, http.StatusAccepted, nil, "Billing run started")
}
