package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdentityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Identity(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CallerID(c)})
	})
	return r
}

func TestIdentity(t *testing.T) {
	r := newIdentityRouter()

	tests := []struct {
		name       string
		header     string
		omitHeader bool
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", omitHeader: true, wantStatus: http.StatusBadRequest, wantBody: "IDENTITY_REQUIRED"},
		{name: "empty header", header: "", omitHeader: true, wantStatus: http.StatusBadRequest, wantBody: "IDENTITY_REQUIRED"},
		{name: "non-numeric", header: "abc", wantStatus: http.StatusBadRequest, wantBody: "IDENTITY_INVALID"},
		{name: "zero", header: "0", wantStatus: http.StatusBadRequest, wantBody: "IDENTITY_INVALID"},
		{name: "negative", header: "-3", wantStatus: http.StatusBadRequest, wantBody: "IDENTITY_INVALID"},
		{name: "valid", header: "42", wantStatus: http.StatusOK, wantBody: `"user_id":42`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if !tc.omitHeader {
				req.Header.Set(HeaderSharerUserID, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestCallerID_AbsentIsZero(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Zero(t, CallerID(c))
}
