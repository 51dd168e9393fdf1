// server/internal/api/handlers/suggestion_handler_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if body != "" {
		c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
	} else {
		c.Request = httptest.NewRequest(method, target, nil)
	}
	return c
}

func TestGenerationCountFromBody(t *testing.T) {
	c := newTestContext(t, http.MethodPost, "/suggestions/generate", `{"count": 2}`)

	count, err := generationCount(c)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGenerationCountBodyWithoutCountUsesDefault(t *testing.T) {
	c := newTestContext(t, http.MethodPost, "/suggestions/generate", `{}`)

	count, err := generationCount(c)
	require.NoError(t, err)
	assert.Equal(t, defaultGenerationCount, count)
}

func TestGenerationCountEmptyBodyUsesDefault(t *testing.T) {
	c := newTestContext(t, http.MethodPost, "/suggestions/generate", "")

	count, err := generationCount(c)
	require.NoError(t, err)
	assert.Equal(t, defaultGenerationCount, count)
}

func TestGenerationCountQueryFallback(t *testing.T) {
	c := newTestContext(t, http.MethodPost, "/suggestions/generate?count=3", "")

	count, err := generationCount(c)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGenerationCountBodyWinsOverQuery(t *testing.T) {
	c := newTestContext(t, http.MethodPost, "/suggestions/generate?count=7", `{"count": 2}`)

	count, err := generationCount(c)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestGenerationCountRejectsMalformedInput(t *testing.T) {
	_, err := generationCount(newTestContext(t, http.MethodPost, "/suggestions/generate", `{"count": "many"}`))
	assert.Error(t, err)

	_, err = generationCount(newTestContext(t, http.MethodPost, "/suggestions/generate?count=many", ""))
	assert.Error(t, err)
}
