package tests

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func listApplications(t *testing.T, query string) []map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/applications"+query, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var list []map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &list))
	return list
}

func TestListJobsSearchLagos(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/jobs?search=Lagos", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	jobs := result["jobs"].([]interface{})
	assert.Len(t, jobs, 2)
	for _, entry := range jobs {
		assert.Equal(t, "Lagos, Nigeria", entry.(map[string]interface{})["location"])
	}

	pagination := result["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["total"])
	assert.Equal(t, float64(1), pagination["page"])
}

func TestListJobsConjunctiveFilters(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/jobs?type=FULL_TIME&africanOnly=true", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	jobs := result["jobs"].([]interface{})
	assert.NotEmpty(t, jobs)
	for _, entry := range jobs {
		job := entry.(map[string]interface{})
		assert.Equal(t, "FULL_TIME", job["type"])
		assert.Equal(t, true, job["africanCompany"])
	}
}

func TestGetJobWithSimilar(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/jobs/1", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	job := result["job"].(map[string]interface{})
	assert.Equal(t, "Senior Kubernetes Engineer", job["title"])
	assert.NotNil(t, result["similarJobs"])

	resp, result = doRequest(t, "GET", "/api/jobs/unknown-id", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Job not found", result["error"])
}

func TestJobCRUDRequiresAdmin(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/jobs", "", map[string]interface{}{
		"title": "Anon Job", "company": "Nobody",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, "POST", "/api/jobs", userToken, map[string]interface{}{
		"title": "User Job", "company": "Nobody",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestJobLifecycle(t *testing.T) {
	resp, created := doRequest(t, "POST", "/api/jobs", adminToken, map[string]interface{}{
		"title":    "Platform Engineer",
		"company":  "Andela",
		"location": "Nairobi, Kenya",
		"type":     "REMOTE",
		"category": "DEVOPS",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	jobID := created["id"].(string)
	assert.NotEmpty(t, jobID)
	assert.Equal(t, "Just now", created["postedAt"])

	resp, updated := doRequest(t, "PUT", "/api/jobs/"+jobID, adminToken, map[string]interface{}{
		"title": "Senior Platform Engineer",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Senior Platform Engineer", updated["title"])
	// Untouched fields keep their values.
	assert.Equal(t, "Andela", updated["company"])

	resp, result := doRequest(t, "DELETE", "/api/jobs/"+jobID, adminToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Job deleted successfully", result["message"])

	resp, _ = doRequest(t, "GET", "/api/jobs/"+jobID, "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApplyToJobValidation(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/jobs/1/apply", "", map[string]interface{}{
		"firstName": "Amina",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, result["error"])

	resp, _ = doRequest(t, "POST", "/api/jobs/missing/apply", "", map[string]interface{}{
		"firstName": "Amina", "lastName": "Diallo", "email": "amina@example.com",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApplicationWorkflow(t *testing.T) {
	resp, application := doRequest(t, "POST", "/api/jobs/2/apply", "", map[string]interface{}{
		"firstName":   "Kwame",
		"lastName":    "Asante",
		"email":       "kwame@example.com",
		"location":    "Accra, Ghana",
		"coverLetter": "I run Kubernetes at my current role.",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "SUBMITTED", application["status"])
	appID := application["id"].(string)

	// Applications come back joined with their job.
	found := false
	for _, entry := range listApplications(t, "?status=SUBMITTED") {
		if entry["id"] == appID {
			found = true
			job := entry["job"].(map[string]interface{})
			assert.Equal(t, "DevOps Engineer - Kubernetes Specialist", job["title"])
		}
	}
	assert.True(t, found)

	// Skipping ahead in the workflow is rejected.
	resp, result := doRequest(t, "PUT", "/api/applications/"+appID+"/status", adminToken, map[string]interface{}{
		"status": "INTERVIEWED",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Illegal status transition", result["error"])

	resp, result = doRequest(t, "PUT", "/api/applications/"+appID+"/status", adminToken, map[string]interface{}{
		"status": "REVIEWED",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "REVIEWED", result["application"].(map[string]interface{})["status"])

	resp, result = doRequest(t, "PUT", "/api/applications/"+appID+"/status", adminToken, map[string]interface{}{
		"status": "NOT_A_STATUS",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Unknown application status", result["error"])
}
