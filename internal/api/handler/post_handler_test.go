package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

var bob = &domain.Principal{Kind: domain.KindMember, ID: "u1", Username: "bob"}

func TestPostHandler_List(t *testing.T) {
	handler := NewPostHandler(&stubPostService{posts: []domain.Post{{ID: "p1", Title: "Hello", Replies: []domain.Reply{}}}})

	c, rec := newJSONContext(http.MethodGet, "/api/posts", nil, nil)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var posts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(posts) != 1 || posts[0]["id"] != "p1" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if replies, ok := posts[0]["replies"].([]any); !ok || len(replies) != 0 {
		t.Fatalf("expected empty replies array, got %v", posts[0]["replies"])
	}
}

func TestPostHandler_Create(t *testing.T) {
	stub := &stubPostService{
		createFn: func(actor *domain.Principal, in ports.CreatePostInput) (*domain.Post, error) {
			return &domain.Post{ID: "p1", Title: in.Title, Content: in.Content, Author: actor.Username, Replies: []domain.Reply{}}, nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/posts", strings.NewReader(`{"title":"Hello","content":"1234567890"}`), bob)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var post domain.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if post.Author != "bob" || post.Title != "Hello" {
		t.Fatalf("unexpected post: %+v", post)
	}
}

func TestPostHandler_Create_RequiresPrincipal(t *testing.T) {
	handler := NewPostHandler(&stubPostService{})

	c, _ := newJSONContext(http.MethodPost, "/api/posts", strings.NewReader(`{}`), nil)
	if err := handler.Create(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestPostHandler_Update_PassesPartialPatch(t *testing.T) {
	stub := &stubPostService{
		updateFn: func(actor *domain.Principal, id string, patch ports.PostPatch) (*domain.Post, error) {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			if patch.Title == nil || *patch.Title != "Hello again" {
				t.Fatalf("expected title in patch, got %+v", patch.Title)
			}
			if patch.Content != nil {
				t.Fatalf("absent content must stay nil")
			}
			return &domain.Post{ID: id, Title: *patch.Title}, nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newJSONContext(http.MethodPut, "/api/posts/p1", strings.NewReader(`{"title":"Hello again"}`), bob)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_Delete(t *testing.T) {
	stub := &stubPostService{
		deleteFn: func(actor *domain.Principal, id string) error {
			if id == "missing" {
				return domain.ErrPostNotFound
			}
			return nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newJSONContext(http.MethodDelete, "/api/posts/p1", nil, bob)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "post deleted") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	c, _ = newJSONContext(http.MethodDelete, "/api/posts/missing", nil, bob)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := handler.Delete(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostHandler_AddReply(t *testing.T) {
	stub := &stubPostService{
		replyFn: func(actor *domain.Principal, id string, in ports.ReplyInput) (*domain.Reply, error) {
			return &domain.Reply{Content: in.Content, Author: actor.Username}, nil
		},
	}
	handler := NewPostHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/posts/p1/replies", strings.NewReader(`{"content":"nice"}`), bob)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := handler.AddReply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var reply domain.Reply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if reply.Content != "nice" || reply.Author != "bob" {
		t.Fatalf("unexpected reply: %+v", reply)
	}
}
