package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hao186188/parttime-job-frontend/internal/api"
	"github.com/Hao186188/parttime-job-frontend/internal/handlers"
	"github.com/Hao186188/parttime-job-frontend/internal/models"
	"github.com/Hao186188/parttime-job-frontend/internal/services"
	"github.com/Hao186188/parttime-job-frontend/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSource struct {
	jobs []models.Job
}

func (f *fakeSource) GetJobs(_ context.Context, _ url.Values) ([]models.Job, error) {
	return f.jobs, nil
}

func newListing(t *testing.T, jobs []models.Job) *services.ListingService {
	t.Helper()
	svc := services.NewListingService(&fakeSource{jobs: jobs})
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return svc
}

// listJobsResponse is the part of the /jobs payload the tests care about.
type listJobsResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Jobs  []models.Job `json:"jobs"`
		Total int          `json:"total"`
	} `json:"data"`
}

// ── GET /jobs ──────────────────────────────────────────────────────────────

func TestListJobs_AppliesCriteriaFromQuery(t *testing.T) {
	now := time.Now()
	jobs := []models.Job{
		{ID: "1", Title: "Phục vụ nhà hàng", Company: models.Company{Name: "Hoa Sen"}, Location: "Hà Nội", CreatedAt: now},
		{ID: "2", Title: "Gia sư toán", Company: models.Company{Name: "Trung tâm ABC"}, Location: "Đà Nẵng", CreatedAt: now.Add(time.Hour)},
	}

	h := handlers.NewJobHandler(newListing(t, jobs), nil)
	r := gin.New()
	r.GET("/jobs", h.ListJobs)

	req := httptest.NewRequest(http.MethodGet, "/jobs?search=ph%E1%BB%A5c+v%E1%BB%A5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp listJobsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data.Total != 1 || resp.Data.Jobs[0].ID != "1" {
		t.Errorf("response = %+v", resp)
	}
}

func TestListJobs_EmptyCollectionIsNotAnError(t *testing.T) {
	h := handlers.NewJobHandler(newListing(t, nil), nil)
	r := gin.New()
	r.GET("/jobs", h.ListJobs)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs?minSalary=99999", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp listJobsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data.Total != 0 {
		t.Errorf("response = %+v", resp)
	}
}

// ── Auth gating ────────────────────────────────────────────────────────────

func TestRequireAuth_AnonymousGets401(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage())

	r := gin.New()
	r.POST("/applications", handlers.RequireAuth(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader("{}")))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireRole_WrongRoleGets403(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage())
	err := store.SetSession(context.Background(), "tok", &models.User{ID: "u1", UserType: models.RoleStudent})
	if err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	r := gin.New()
	r.POST("/jobs", handlers.RequireRole(store, models.RoleEmployer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader("{}")))

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	store := session.NewStore(session.NewMemoryStorage())
	err := store.SetSession(context.Background(), "tok", &models.User{ID: "e1", UserType: models.RoleEmployer})
	if err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	r := gin.New()
	r.POST("/jobs", handlers.RequireRole(store, models.RoleEmployer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader("{}")))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

// ── Error surface ──────────────────────────────────────────────────────────

// The server's message travels through unchanged; transport failures get the
// generic fallback and a 502.
func TestFeaturedJobs_PropagatesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"message":"Hệ thống đang bảo trì"}`))
	}))
	defer srv.Close()

	h := handlers.NewJobHandler(newListing(t, nil), api.NewClient(srv.URL, nil))
	r := gin.New()
	r.GET("/jobs/featured", h.FeaturedJobs)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/featured", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success || resp.Message != "Hệ thống đang bảo trì" {
		t.Errorf("response = %+v", resp)
	}
}

func TestAuthLogin_BindingErrorIs400(t *testing.T) {
	h := handlers.NewAuthHandler(nil, session.NewStore(session.NewMemoryStorage()))
	r := gin.New()
	r.POST("/auth/login", h.Login)

	body := strings.NewReader(`{"email":"not-an-email"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
