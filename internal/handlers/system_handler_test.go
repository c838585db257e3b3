package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSystemHandler_RunBillingWithoutScheduler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewSystemHandler(nil)
	router := gin.New()
	router.POST("/system/billing/run", handler.RunBilling)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/system/billing/run", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
