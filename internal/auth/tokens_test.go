// SPDX-License-Identifier: MIT
package auth

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	os.Setenv("PLATEFRONT_TOKEN_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestGenerateAndValidateDraftToken(t *testing.T) {
	token, err := GenerateDraftToken(42)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ValidateDraftToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.DraftID != 42 {
		t.Errorf("expected draft ID 42, got %d", claims.DraftID)
	}
}

func TestValidateDraftTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateDraftToken(""); err == nil {
		t.Error("expected error for empty token")
	}
	if _, err := ValidateDraftToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestRequireDraftTokenMatchesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := GenerateDraftToken(7)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	router := gin.New()
	router.PUT("/api/drafts/:id/info", RequireDraftToken(), func(c *gin.Context) {
		c.Status(204)
	})

	// Matching draft - allowed
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/drafts/7/info", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != 204 {
		t.Errorf("expected 204 for matching draft, got %d", w.Code)
	}

	// Different draft - forbidden
	w = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/api/drafts/8/info", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != 403 {
		t.Errorf("expected 403 for mismatched draft, got %d", w.Code)
	}

	// No token - unauthorized
	w = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/api/drafts/7/info", nil)
	router.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
