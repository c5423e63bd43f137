package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The envelope contract: the top-level code is the numeric HTTP status, the
// string error code sits inside the error object.
func TestErrorEnvelopeShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, 404, "USER_NOT_FOUND", "User not found")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, false, resp["success"])
	assert.Equal(t, float64(404), resp["code"])

	errObj, ok := resp["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "USER_NOT_FOUND", errObj["code"])
	assert.Equal(t, "User not found", errObj["message"])

	meta, ok := resp["meta"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, meta["requestId"])
}

func TestSuccessEnvelopeShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Success(c, 200, "OK", gin.H{"id": 1})

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(200), resp["code"])
	assert.NotContains(t, resp, "error")
}
