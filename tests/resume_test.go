package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestResumeNotFoundBeforeSave(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/resume", adminToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Resume not found", result["error"])
}

func TestResumeSaveAndGet(t *testing.T) {
	body := map[string]interface{}{
		"firstName":       "Amina",
		"lastName":        "Diallo",
		"email":           "amina@example.com",
		"location":        "Dakar, Senegal",
		"summary":         "Platform engineer focused on Kubernetes.",
		"technicalSkills": []string{"Kubernetes", "Go", "Terraform"},
		"experience": []map[string]interface{}{
			{
				"company":      "Wave",
				"position":     "SRE",
				"startDate":    "2022-01",
				"current":      true,
				"achievements": []string{"Migrated workloads to Kubernetes"},
			},
		},
		"education": []map[string]interface{}{
			{
				"institution": "Université Cheikh Anta Diop",
				"degree":      "BSc",
				"field":       "Computer Science",
				"startDate":   "2016-09",
				"endDate":     "2020-06",
			},
		},
	}

	resp, result := doRequest(t, "PUT", "/api/resume", userToken, body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Resume saved", result["message"])

	resp, resume := doRequest(t, "GET", "/api/resume", userToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Amina", resume["firstName"])

	experience := resume["experience"].([]interface{})
	assert.Len(t, experience, 1)
	assert.Equal(t, "Wave", experience[0].(map[string]interface{})["company"])

	// Saving again replaces the document wholesale.
	body["experience"] = []map[string]interface{}{}
	body["summary"] = "Updated summary"
	resp, _ = doRequest(t, "PUT", "/api/resume", userToken, body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, resume = doRequest(t, "GET", "/api/resume", userToken, nil)
	assert.Equal(t, "Updated summary", resume["summary"])
	assert.Empty(t, resume["experience"])
}

func TestResumeValidation(t *testing.T) {
	resp, result := doRequest(t, "PUT", "/api/resume", userToken, map[string]interface{}{
		"firstName": "Incomplete",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, result["error"])
}
