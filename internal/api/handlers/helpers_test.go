package handlers_test

import (
	"bytes"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// performRequest sends a JSON request through router and records the response
func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
