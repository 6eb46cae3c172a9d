package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lmsadmin/internal/repository"
	"lmsadmin/internal/service"
	"lmsadmin/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	store := storage.NewMemoryStore()
	log := zerolog.Nop()
	courseRepo := repository.NewCourseRepo(store, "test", log)
	sectionRepo := repository.NewSectionRepo(store, "test", log)
	lessonRepo := repository.NewLessonRepo(store, "test", log)
	courseSvc := service.NewCourseService(courseRepo, sectionRepo, lessonRepo, nil, "", 0, log)
	curriculumSvc := service.NewCurriculumService(sectionRepo, lessonRepo, nil, "", 0, log)
	validate := validator.New(validator.WithRequiredStructEnabled())

	mux := http.NewServeMux()
	NewCourseHandler(courseSvc, validate, log).RegisterRoutes(mux)
	NewCurriculumHandler(curriculumSvc, nil, validate, log).RegisterRoutes(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateCourseEndpoint(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/courses", `{"title":"Algebra","metadata":{"price":49}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.ID == "" || resp.Data.Title != "Algebra" || resp.Data.Status != "draft" {
		t.Fatalf("unexpected envelope: %+v", resp.Data)
	}
}

func TestCreateCourseValidation(t *testing.T) {
	mux := newTestMux(t)
	rec := do(t, mux, http.MethodPost, "/courses", `{"metadata":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", rec.Code)
	}
}

func TestGetMissingCourseReturnsNullData(t *testing.T) {
	mux := newTestMux(t)
	rec := do(t, mux, http.MethodGet, "/courses/nope", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if string(resp["data"]) != "null" {
		t.Fatalf("expected data: null, got %s", resp["data"])
	}
}

func TestUpdateMissingCourseReturns404(t *testing.T) {
	mux := newTestMux(t)
	rec := do(t, mux, http.MethodPatch, "/courses/nope", `{"title":"X"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteCourseEndpointEnvelope(t *testing.T) {
	mux := newTestMux(t)
	rec := do(t, mux, http.MethodDelete, "/courses/anything", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Fatalf("expected success: true, got %s", rec.Body.String())
	}
}

func TestCurriculumRoundTripOverHTTP(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/courses", `{"title":"C"}`)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	rec = do(t, mux, http.MethodPost, "/courses/"+created.Data.ID+"/sections", `{"title":"Unit 1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var sec struct {
		Data struct {
			ID    string `json:"id"`
			Order int    `json:"order"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sec); err != nil {
		t.Fatal(err)
	}
	if sec.Data.Order != 1 {
		t.Fatalf("expected order 1, got %d", sec.Data.Order)
	}

	rec = do(t, mux, http.MethodPost, "/sections/"+sec.Data.ID+"/lessons?courseId="+created.Data.ID, `{"title":"Welcome"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, mux, http.MethodGet, "/courses/"+created.Data.ID+"/curriculum", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var tree struct {
		Data struct {
			Sections []struct {
				ID      string `json:"id"`
				Lessons []struct {
					Title string `json:"title"`
					Type  string `json:"type"`
				} `json:"lessons"`
			} `json:"sections"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tree); err != nil {
		t.Fatal(err)
	}
	if len(tree.Data.Sections) != 1 || len(tree.Data.Sections[0].Lessons) != 1 {
		t.Fatalf("unexpected tree: %s", rec.Body.String())
	}
	lesson := tree.Data.Sections[0].Lessons[0]
	if lesson.Title != "Welcome" || lesson.Type != "video" {
		t.Fatalf("unexpected lesson: %+v", lesson)
	}

	rec = do(t, mux, http.MethodPost, "/lessons/whatever/material/upload", `{"filename":"a.pdf"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without object storage, got %d", rec.Code)
	}
}
