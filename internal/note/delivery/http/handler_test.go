package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskie/internal/middleware"
	"taskie/internal/model"
	"taskie/internal/note"
	"taskie/pkg/log"
)

type mockNoteUseCase struct {
	listOutput note.ListOutput
	err        error
	lastScope  model.Scope
	lastID     string
	lastInput  note.CreateInput
}

func (m *mockNoteUseCase) List(ctx context.Context, sc model.Scope) (note.ListOutput, error) {
	m.lastScope = sc
	return m.listOutput, m.err
}
func (m *mockNoteUseCase) Create(ctx context.Context, sc model.Scope, input note.CreateInput) (note.CreateOutput, error) {
	m.lastScope = sc
	m.lastInput = input
	return note.CreateOutput{Note: model.Note{ID: "n1", Title: input.Title, Content: input.Content, TaskPriority: input.TaskPriority}}, m.err
}
func (m *mockNoteUseCase) Complete(ctx context.Context, sc model.Scope, id string) error {
	m.lastID = id
	return m.err
}
func (m *mockNoteUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	m.lastID = id
	return m.err
}

type allowAll struct{}

func (allowAll) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	return model.Scope{UserID: "u1", Email: "a@b.c"}, nil
}

func newRouter(uc note.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), allowAll{}, 0)
	RegisterRoutes(r.Group("/api/note"), New(log.NewNop(), uc), mw)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "token")
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	uc := &mockNoteUseCase{listOutput: note.ListOutput{Notes: []model.Note{
		{ID: "1", Title: "a", IsCompleted: true, TaskPriority: 2},
	}}}
	w := serve(newRouter(uc), http.MethodGet, "/api/note", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string][]map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	notes := body["notes"]
	if len(notes) != 1 || notes[0]["isCompleted"] != true || notes[0]["taskPriority"] != float64(2) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if uc.lastScope.UserID != "u1" {
		t.Errorf("scope not passed: %+v", uc.lastScope)
	}

	empty := serve(newRouter(&mockNoteUseCase{}), http.MethodGet, "/api/note", "")
	if strings.TrimSpace(empty.Body.String()) != `{"notes":[]}` {
		t.Errorf("expected empty notes array, got %s", empty.Body.String())
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"valid", `{"title":"t","content":"c","taskPriority":3}`, http.StatusOK},
		{"missing title", `{"content":"c","taskPriority":3}`, http.StatusBadRequest},
		{"blank content", `{"title":"t","content":"  ","taskPriority":3}`, http.StatusBadRequest},
		{"zero priority", `{"title":"t","content":"c","taskPriority":0}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newRouter(&mockNoteUseCase{}), http.MethodPost, "/api/note", tt.body)
			if w.Code != tt.code {
				t.Errorf("expected %d, got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}

	t.Run("Invalid Priority From UseCase", func(t *testing.T) {
		uc := &mockNoteUseCase{err: note.ErrInvalidPriority}
		w := serve(newRouter(uc), http.MethodPost, "/api/note", `{"title":"t","content":"c","taskPriority":9}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestCompleteAndDelete(t *testing.T) {
	uc := &mockNoteUseCase{}
	r := newRouter(uc)

	w := serve(r, http.MethodPost, "/api/note/complete?id=n1", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), messageCompleted) {
		t.Errorf("complete: %d %s", w.Code, w.Body.String())
	}
	if uc.lastID != "n1" {
		t.Errorf("expected id n1, got %q", uc.lastID)
	}

	w = serve(r, http.MethodDelete, "/api/note?id=n2", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), messageDeleted) {
		t.Errorf("delete: %d %s", w.Code, w.Body.String())
	}

	if w = serve(r, http.MethodDelete, "/api/note", ""); w.Code != http.StatusBadRequest {
		t.Errorf("missing id: expected 400, got %d", w.Code)
	}

	missing := newRouter(&mockNoteUseCase{err: note.ErrNoteNotFound})
	w = serve(missing, http.MethodPost, "/api/note/complete?id=x", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: expected 404, got %d", w.Code)
	}
	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "note not found" {
		t.Errorf("expected message in error body, got %v", body)
	}
}
