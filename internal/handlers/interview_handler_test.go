package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"prepview/interview-api/internal/models"
)

func TestCreateInterview_Defaults(t *testing.T) {
	env := newTestEnv(t)

	interview := env.createInterview(t, "user-1", "Backend Engineer")

	if interview.ID == uuid.Nil {
		t.Fatal("expected a generated interview ID")
	}
	if interview.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %s", interview.Status)
	}
	if interview.CompletedQuestions != 0 {
		t.Fatalf("expected 0 completed questions, got %d", interview.CompletedQuestions)
	}
}

func TestCreateInterview_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.request(t, http.MethodPost, "/api/interviews", map[string]string{
		"user_id": "user-1",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	resp, payload := env.request(t, http.MethodGet, "/api/interviews", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var interviews []models.Interview
	decodeJSON(t, payload, &interviews)
	if len(interviews) != 0 {
		t.Fatalf("expected no interviews persisted, got %d", len(interviews))
	}
}

func TestGetInterview_NotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.request(t, http.MethodGet, "/api/interviews/"+uuid.New().String(), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodGet, "/api/interviews/not-a-uuid", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", resp.StatusCode)
	}
}

func TestListInterviewsByOwner(t *testing.T) {
	env := newTestEnv(t)

	env.createInterview(t, "alice", "Backend Engineer")
	env.createInterview(t, "alice", "SRE")
	env.createInterview(t, "bob", "Data Engineer")

	resp, payload := env.request(t, http.MethodGet, "/api/interviews/owner/alice", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var interviews []models.Interview
	decodeJSON(t, payload, &interviews)
	if len(interviews) != 2 {
		t.Fatalf("expected 2 interviews for alice, got %d", len(interviews))
	}
	for _, interview := range interviews {
		if interview.UserID != "alice" {
			t.Fatalf("unexpected owner %s", interview.UserID)
		}
	}
}

func TestUpdateInterview_Status(t *testing.T) {
	env := newTestEnv(t)
	interview := env.createInterview(t, "user-1", "Backend Engineer")

	status := "in_progress"
	resp, payload := env.request(t, http.MethodPut, "/api/interviews/"+interview.ID.String(), models.UpdateInterviewRequest{
		Status: &status,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, payload)
	}

	var updated models.Interview
	decodeJSON(t, payload, &updated)
	if updated.Status != models.StatusInProgress {
		t.Fatalf("expected in_progress, got %s", updated.Status)
	}

	bogus := "paused"
	resp, _ = env.request(t, http.MethodPut, "/api/interviews/"+interview.ID.String(), models.UpdateInterviewRequest{
		Status: &bogus,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", resp.StatusCode)
	}
}

func TestDeleteInterview(t *testing.T) {
	env := newTestEnv(t)
	interview := env.createInterview(t, "user-1", "Backend Engineer")

	resp, _ := env.request(t, http.MethodDelete, "/api/interviews/"+interview.ID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, _ = env.request(t, http.MethodDelete, "/api/interviews/"+interview.ID.String(), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestMonitoringEvent(t *testing.T) {
	env := newTestEnv(t)
	interview := env.createInterview(t, "user-1", "Backend Engineer")
	path := "/api/interviews/" + interview.ID.String() + "/monitoring"

	resp, payload := env.request(t, http.MethodPut, path, models.MonitoringEventRequest{
		EventType: models.EventCopyPaste,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, payload)
	}

	var updated models.Interview
	decodeJSON(t, payload, &updated)
	if !updated.HasAttemptedCopyPaste {
		t.Fatal("expected has_attempted_copy_paste to be set")
	}
	if updated.HasStoppedCamera {
		t.Fatal("camera flag should be untouched")
	}

	// Reporting the same event twice leaves the flag set.
	resp, payload = env.request(t, http.MethodPut, path, models.MonitoringEventRequest{
		EventType: models.EventCopyPaste,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d", resp.StatusCode)
	}
	decodeJSON(t, payload, &updated)
	if !updated.HasAttemptedCopyPaste {
		t.Fatal("flag must stay set after a repeated event")
	}
}

func TestMonitoringEvent_Invalid(t *testing.T) {
	env := newTestEnv(t)
	interview := env.createInterview(t, "user-1", "Backend Engineer")

	resp, _ := env.request(t, http.MethodPut, "/api/interviews/"+interview.ID.String()+"/monitoring", models.MonitoringEventRequest{
		EventType: "tab_switch",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown event, got %d", resp.StatusCode)
	}
}

func TestMonitoringEvent_Latest(t *testing.T) {
	env := newTestEnv(t)
	env.createInterview(t, "user-1", "Backend Engineer")
	latest := env.createInterview(t, "user-1", "SRE")

	resp, payload := env.request(t, http.MethodPut, "/api/interviews/last/monitoring", models.MonitoringEventRequest{
		EventType: models.EventCameraStopped,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, payload)
	}

	var updated models.Interview
	decodeJSON(t, payload, &updated)
	if updated.ID != latest.ID {
		t.Fatalf("expected latest interview %s, got %s", latest.ID, updated.ID)
	}
	if !updated.HasStoppedCamera {
		t.Fatal("expected has_stopped_camera to be set")
	}
}

// Exercises the full recording flow: an interview is created, a video answer is
// posted for it, and the completed question counter moves by exactly one.
func TestVideoAnswerFlow(t *testing.T) {
	env := newTestEnv(t)
	interview := env.createInterview(t, "user-1", "Backend Engineer")

	resp, payload := env.request(t, http.MethodPost, "/api/video-answers", models.CreateVideoAnswerRequest{
		InterviewID:  interview.ID.String(),
		QuestionID:   uuid.New().String(),
		QuestionType: "technical",
		QuestionText: "Explain goroutine scheduling.",
		URL:          "https://cdn.test/interviews/answer-1.webm",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, payload)
	}

	var answer models.VideoAnswer
	decodeJSON(t, payload, &answer)
	if answer.InterviewID != interview.ID {
		t.Fatalf("answer bound to %s, want %s", answer.InterviewID, interview.ID)
	}

	resp, payload = env.request(t, http.MethodGet, "/api/interviews/"+interview.ID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var refreshed models.Interview
	decodeJSON(t, payload, &refreshed)
	if refreshed.CompletedQuestions != 1 {
		t.Fatalf("expected completed_questions=1, got %d", refreshed.CompletedQuestions)
	}

	resp, payload = env.request(t, http.MethodGet, "/api/interviews/"+interview.ID.String()+"/video-answers", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var answers []models.VideoAnswer
	decodeJSON(t, payload, &answers)
	if len(answers) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(answers))
	}
}

func TestVideoAnswer_MissingInterview(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.request(t, http.MethodPost, "/api/video-answers", models.CreateVideoAnswerRequest{
		InterviewID: uuid.New().String(),
		URL:         "https://cdn.test/interviews/answer.webm",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown interview, got %d", resp.StatusCode)
	}
}
