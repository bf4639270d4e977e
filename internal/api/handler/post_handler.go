package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List returns every forum post.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   domain.Post
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create opens a new thread authored by the caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Rejects repeated submissions"
// @Param        body             body      ports.CreatePostInput  true   "Post"
// @Success      200              {object}  domain.Post
// @Failure      409              {object}  map[string]string
// @Failure      422              {object}  map[string]string
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.CreatePostInput
	if err := bind(c, &req); err != nil {
		return err
	}

	post, err := h.postService.Create(c.Request().Context(), p, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update edits a post. Authors may edit their own; others need edit_any_post.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Post ID"
// @Param        body  body      ports.PostPatch  true  "Fields to change"
// @Success      200   {object}  domain.Post
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.PostPatch
	if err := bind(c, &req); err != nil {
		return err
	}

	post, err := h.postService.Update(c.Request().Context(), p, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a post. Authors may delete their own; others need delete_any_post.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

// AddReply appends a reply authored by the caller.
//
// @Summary      Reply to a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Post ID"
// @Param        body  body      ports.ReplyInput  true  "Reply"
// @Success      200   {object}  domain.Reply
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/posts/{id}/replies [post]
func (h *PostHandler) AddReply(c echo.Context) error {
	p, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.ReplyInput
	if err := bind(c, &req); err != nil {
		return err
	}

	reply, err := h.postService.AddReply(c.Request().Context(), p, c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}
