package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parkwise/models"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func roleRouter(role string, allowed ...string) *gin.Engine {
	router := gin.New()
	router.GET("/guarded",
		func(c *gin.Context) {
			if role != "" {
				c.Set("userRole", role)
			}
		},
		RequireRoles(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"admin allowed", models.RoleAdmin, []string{models.RoleAdmin}, http.StatusOK},
		{"attendant allowed alongside admin", models.RoleAttendant, []string{models.RoleAdmin, models.RoleAttendant}, http.StatusOK},
		{"user rejected", models.RoleUser, []string{models.RoleAdmin}, http.StatusForbidden},
		{"missing role context", "", []string{models.RoleAdmin}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			roleRouter(tt.role, tt.allowed...).ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusOK {
				return
			}
			var body struct {
				Success *bool  `json:"success"`
				Error   string `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Success == nil || *body.Success || body.Error == "" {
				t.Errorf("body = %s, want success:false with an error", w.Body.String())
			}
		})
	}
}

func selfRouter(userID, role string, allowed ...string) *gin.Engine {
	router := gin.New()
	router.PUT("/users/:id",
		func(c *gin.Context) {
			c.Set("userID", userID)
			c.Set("userRole", role)
		},
		RequireSelfOrRoles(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func TestRequireSelfOrRoles(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		role   string
		target string
		want   int
	}{
		{"own record", "user-1", models.RoleUser, "user-1", http.StatusOK},
		{"admin on another record", "admin-1", models.RoleAdmin, "user-1", http.StatusOK},
		{"user on another record", "user-1", models.RoleUser, "user-2", http.StatusForbidden},
		{"attendant on another record", "att-1", models.RoleAttendant, "user-1", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.target, nil)
			selfRouter(tt.userID, tt.role, models.RoleAdmin).ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
