package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/platefront/platefront/internal/config"
	"github.com/platefront/platefront/internal/db"
	"github.com/platefront/platefront/internal/generator"
	"github.com/platefront/platefront/internal/models"
)

func pointSubmitBackend(t *testing.T, endpoint string) {
	t.Helper()

	dir := t.TempDir()
	if err := config.InitConfig(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("failed to init config: %v", err)
	}
	if err := config.Set("generator.endpoint", endpoint); err != nil {
		t.Fatalf("failed to set endpoint: %v", err)
	}
	if err := config.Set("storage.uploads_dir", filepath.Join(dir, "uploads")); err != nil {
		t.Fatalf("failed to set uploads dir: %v", err)
	}
}

func TestSubmitDraftHandsOffToGenerator(t *testing.T) {
	router := setupRouter(t)
	draftID, _ := createTestDraft(t, router, "Casa Verde")

	var received generator.SubmitRequest
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("failed to decode hand-off payload: %v", err)
		}
		json.NewEncoder(w).Encode(generator.SubmitResponse{
			SiteURL: "https://casa-verde.example",
			JobID:   "job-42",
		})
	}))
	defer backend.Close()
	pointSubmitBackend(t, backend.URL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/drafts/1/submit", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		SiteURL string `json:"siteUrl"`
		JobID   string `json:"jobId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.SiteURL != "https://casa-verde.example" || response.JobID != "job-42" {
		t.Errorf("unexpected response: %+v", response)
	}
	if received.Draft.RestaurantName != "Casa Verde" {
		t.Errorf("draft not transmitted to backend: %+v", received.Draft)
	}

	var draft models.Draft
	if err := db.GetDB().First(&draft, draftID).Error; err != nil {
		t.Fatalf("failed to load draft: %v", err)
	}
	if !draft.Submitted || draft.SubmittedAt == nil {
		t.Error("draft should be marked submitted")
	}
}

func TestSubmitDraftTwiceConflicts(t *testing.T) {
	router := setupRouter(t)
	createTestDraft(t, router, "Casa Verde")

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generator.SubmitResponse{SiteURL: "https://x.example", JobID: "job-1"})
	}))
	defer backend.Close()
	pointSubmitBackend(t, backend.URL)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest("POST", "/api/drafts/1/submit", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first submit should succeed, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest("POST", "/api/drafts/1/submit", nil))
	if second.Code != http.StatusConflict {
		t.Errorf("second submit should conflict, got %d", second.Code)
	}
}

func TestSubmitDraftRequiresName(t *testing.T) {
	router := setupRouter(t)
	createTestDraft(t, router, "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/drafts/1/submit", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unnamed draft, got %d", w.Code)
	}
}

func TestSubmitDraftBackendUnavailable(t *testing.T) {
	router := setupRouter(t)
	draftID, _ := createTestDraft(t, router, "Casa Verde")
	pointSubmitBackend(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/drafts/1/submit", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var draft models.Draft
	if err := db.GetDB().First(&draft, draftID).Error; err != nil {
		t.Fatalf("failed to load draft: %v", err)
	}
	if draft.Submitted {
		t.Error("failed hand-off must not mark the draft submitted")
	}
}
