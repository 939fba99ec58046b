package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vitalcheck/backend/models"
	"github.com/vitalcheck/backend/testutil"
)

// TestFullAdminWorkflow tests the complete end-to-end workflow:
// 1. Register an admin
// 2. Log in with the same credentials
// 3. Public form submits assessments
// 4. Admin lists and searches them
// 5. Admin checks the dashboard stats
// 6. Admin deletes one, then all
func TestFullAdminWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	authHandler := NewAuthHandler(db, cfg)
	assessmentHandler := NewAssessmentHandler(db, cfg)
	statsHandler := NewStatsHandler(db, cfg)

	// Step 1: Register
	registerReq := models.RegisterRequest{
		Name:     "Integration Tester",
		Email:    "integration@example.com",
		Password: "integration-pw",
	}
	w := httptest.NewRecorder()
	authHandler.Register(w, testutil.MakeRequest("POST", "/api/admin/register", registerReq, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Register failed: %d - %s", w.Code, w.Body.String())
	}

	var registerResp models.AuthResponse
	testutil.AssertJSON(t, w, &registerResp)
	if registerResp.Token == "" {
		t.Fatal("Step 1 - Missing token")
	}
	t.Logf("Step 1 - Registered admin: %s", registerResp.Admin.ID)

	// Step 2: Log in
	loginReq := models.LoginRequest{
		Email:    "integration@example.com",
		Password: "integration-pw",
	}
	w = httptest.NewRecorder()
	authHandler.Login(w, testutil.MakeRequest("POST", "/api/admin/login", loginReq, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Login failed: %d - %s", w.Code, w.Body.String())
	}

	var loginResp models.AuthResponse
	testutil.AssertJSON(t, w, &loginResp)
	if loginResp.Admin.ID != registerResp.Admin.ID {
		t.Fatalf("Step 2 - Login resolved a different admin")
	}
	t.Log("Step 2 - Logged in")

	// Step 3: Public submissions
	patients := []string{"Jane Doe", "John Smith", "Maria Garcia"}
	var firstID int
	for i, name := range patients {
		sub := sampleSubmission(name)
		if i == 0 {
			sub.OverallRisk = "High Risk"
		}
		w := httptest.NewRecorder()
		assessmentHandler.Submit(w, testutil.MakeRequest("POST", "/api/assessments", sub, nil))
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Submit for %s failed: %d - %s", name, w.Code, w.Body.String())
		}
		var subResp models.SubmitAssessmentResponse
		testutil.AssertJSON(t, w, &subResp)
		if i == 0 {
			firstID = subResp.Assessment.ID
		}
	}
	t.Logf("Step 3 - Submitted %d assessments", len(patients))

	// Step 4: List and search
	w = httptest.NewRecorder()
	assessmentHandler.List(w, testutil.MakeRequest("GET", "/api/admin/assessments", nil, nil))
	var listResp models.ListAssessmentsResponse
	testutil.AssertJSON(t, w, &listResp)
	if listResp.Pagination.Total != 3 {
		t.Fatalf("Step 4 - Expected 3 assessments, got %d", listResp.Pagination.Total)
	}

	w = httptest.NewRecorder()
	assessmentHandler.List(w, testutil.MakeRequest("GET", "/api/admin/assessments?search=garcia", nil, nil))
	testutil.AssertJSON(t, w, &listResp)
	if listResp.Pagination.Total != 1 || listResp.Assessments[0].PatientName != "Maria Garcia" {
		t.Fatalf("Step 4 - Search failed: %+v", listResp)
	}
	t.Log("Step 4 - List and search verified")

	// Step 5: Stats
	w = httptest.NewRecorder()
	statsHandler.GetStats(w, testutil.MakeRequest("GET", "/api/admin/stats", nil, nil))
	var statsResp models.StatsResponse
	testutil.AssertJSON(t, w, &statsResp)
	if statsResp.TotalAssessments != 3 {
		t.Fatalf("Step 5 - Expected total 3, got %d", statsResp.TotalAssessments)
	}
	if statsResp.RiskDistribution.High != 1 || statsResp.RiskDistribution.Mid != 2 {
		t.Fatalf("Step 5 - Unexpected distribution: %+v", statsResp.RiskDistribution)
	}
	t.Log("Step 5 - Stats verified")

	// Step 6: Delete one, then all
	req := testutil.MakeRequest("DELETE", fmt.Sprintf("/api/admin/assessments/%d", firstID), nil, nil)
	req.SetPathValue("id", fmt.Sprintf("%d", firstID))
	w = httptest.NewRecorder()
	assessmentHandler.Delete(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - Delete failed: %d - %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	assessmentHandler.DeleteAll(w, testutil.MakeRequest("DELETE", "/api/admin/assessments", nil, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 6 - DeleteAll failed: %d - %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	assessmentHandler.List(w, testutil.MakeRequest("GET", "/api/admin/assessments", nil, nil))
	testutil.AssertJSON(t, w, &listResp)
	if listResp.Pagination.Total != 0 || len(listResp.Assessments) != 0 {
		t.Fatalf("Step 6 - Expected empty listing, got %+v", listResp.Pagination)
	}
	t.Log("Step 6 - Deletion verified")
}
