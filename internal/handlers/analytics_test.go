package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, rawQuery string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/analytics/heatmap?"+rawQuery, nil)
	return c, w
}

func TestIntQuery_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		def    int
		max    int
		want   int
		wantOK bool
	}{
		{"absent uses default", "", 365, maxHeatmapWindow, 365, true},
		{"valid value", "window=90", 365, maxHeatmapWindow, 90, true},
		{"at the cap", "window=730", 365, maxHeatmapWindow, 730, true},
		{"non-numeric", "window=soon", 365, maxHeatmapWindow, 0, false},
		{"zero", "window=0", 365, maxHeatmapWindow, 0, false},
		{"negative", "window=-1", 365, maxHeatmapWindow, 0, false},
		{"over the cap", "window=1000000000", 365, maxHeatmapWindow, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t, tt.query)

			got, ok := intQuery(c, "window", tt.def, tt.max)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
			if !ok && w.Code != http.StatusBadRequest {
				t.Errorf("expected a 400 problem response, got %d", w.Code)
			}
		})
	}
}
