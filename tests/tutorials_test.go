package tests

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func createTutorial(t *testing.T, slug, title, difficulty string) {
	t.Helper()
	resp, _ := doRequest(t, "POST", "/api/tutorials", adminToken, map[string]interface{}{
		"title":      title,
		"slug":       slug,
		"difficulty": difficulty,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func addLesson(t *testing.T, slug string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	resp, result := doRequest(t, "POST", "/api/tutorials/"+slug+"/lessons", adminToken, body)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return result["lesson"].(map[string]interface{})
}

func TestListTutorialsSortedByDisplayOrder(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/tutorials", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	tutorials := result["tutorials"].([]interface{})
	assert.GreaterOrEqual(t, len(tutorials), 5)

	last := -1 << 31
	for _, entry := range tutorials {
		order := int(entry.(map[string]interface{})["order"].(float64))
		assert.GreaterOrEqual(t, order, last)
		last = order
	}
}

func TestListTutorialsDifficultyFilter(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/tutorials?difficulty=ADVANCED", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	tutorials := result["tutorials"].([]interface{})
	assert.NotEmpty(t, tutorials)
	for _, entry := range tutorials {
		assert.Equal(t, "ADVANCED", entry.(map[string]interface{})["difficulty"])
	}
}

func TestGetTutorialNotFound(t *testing.T) {
	resp, result := doRequest(t, "GET", "/api/tutorials/nonexistent-slug", "", nil)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Tutorial not found", result["error"])
}

func TestCreateTutorialRequiresAdmin(t *testing.T) {
	resp, _ := doRequest(t, "POST", "/api/tutorials", userToken, map[string]interface{}{
		"title": "Sneaky", "slug": "sneaky",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, "POST", "/api/tutorials", "", map[string]interface{}{
		"title": "Anonymous", "slug": "anonymous",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAddLessonAssignsSequenceOrder(t *testing.T) {
	createTutorial(t, "intro-k8s", "Intro to K8s", "BEGINNER")

	for i := 1; i <= 4; i++ {
		lesson := addLesson(t, "intro-k8s", map[string]interface{}{
			"title":   fmt.Sprintf("Lesson %d", i),
			"content": "...",
		})
		assert.Equal(t, float64(i), lesson["order"])
		assert.Equal(t, false, lesson["completed"])
	}

	// Fifth lesson: defaults fill in type and duration.
	lesson := addLesson(t, "intro-k8s", map[string]interface{}{
		"title":   "What is a Pod?",
		"content": "...",
		"type":    "text",
	})
	assert.Equal(t, float64(5), lesson["order"])
	assert.Equal(t, float64(10), lesson["duration"])
	assert.Equal(t, "text", lesson["type"])
	assert.Equal(t, false, lesson["completed"])

	resp, result := doRequest(t, "GET", "/api/tutorials/intro-k8s/lessons", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	lessons := result["lessons"].([]interface{})
	assert.Len(t, lessons, 5)
	lastLesson := lessons[4].(map[string]interface{})
	assert.Equal(t, "What is a Pod?", lastLesson["title"])
	assert.Equal(t, float64(5), lastLesson["order"])

	tutorial := result["tutorial"].(map[string]interface{})
	assert.Equal(t, "intro-k8s", tutorial["slug"])
	assert.Equal(t, "BEGINNER", tutorial["difficulty"])
}

func TestAddLessonExplicitOrder(t *testing.T) {
	createTutorial(t, "explicit-order", "Explicit Order", "BEGINNER")

	lesson := addLesson(t, "explicit-order", map[string]interface{}{
		"title": "Jumped ahead",
		"order": 7,
	})
	assert.Equal(t, float64(7), lesson["order"])
}

func TestAddLessonTutorialNotFound(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/tutorials/missing/lessons", adminToken, map[string]interface{}{
		"title": "Orphan",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Tutorial not found", result["error"])
}

func TestUpdateTutorialPartialFields(t *testing.T) {
	createTutorial(t, "partial-update", "Before", "BEGINNER")

	resp, result := doRequest(t, "PUT", "/api/tutorials/partial-update", adminToken, map[string]interface{}{
		"difficulty": "ADVANCED",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	tutorial := result["tutorial"].(map[string]interface{})
	assert.Equal(t, "Before", tutorial["title"])
	assert.Equal(t, "ADVANCED", tutorial["difficulty"])
}

func TestDeleteTutorialRemovesLessons(t *testing.T) {
	createTutorial(t, "doomed", "Doomed", "BEGINNER")
	addLesson(t, "doomed", map[string]interface{}{"title": "Gone soon"})

	resp, result := doRequest(t, "DELETE", "/api/tutorials/doomed", adminToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Tutorial deleted successfully", result["message"])

	resp, _ = doRequest(t, "GET", "/api/tutorials/doomed/lessons", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCompleteLessonIsIdempotent(t *testing.T) {
	createTutorial(t, "complete-me", "Complete Me", "BEGINNER")
	lesson := addLesson(t, "complete-me", map[string]interface{}{"title": "Only lesson"})
	lessonID := int(lesson["id"].(float64))

	path := fmt.Sprintf("/api/tutorials/complete-me/lessons/%d/complete", lessonID)

	resp, result := doRequest(t, "POST", path, userToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["lesson"].(map[string]interface{})["completed"])

	// Second completion is a no-op, not an error.
	resp, result = doRequest(t, "POST", path, userToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, result["lesson"].(map[string]interface{})["completed"])
}
