package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)
	author := registerUser(t, app, "Author", "cauthor@example.com")
	commenter := registerUser(t, app, "Commenter", "commenter@example.com")
	postID := createPost(t, app, author, "discuss")

	path := fmt.Sprintf("/api/posts/comment/%d", postID)

	resp, comments := doJSONList(t, app, http.MethodPost, path, commenter, fiber.Map{"text": "first!"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, comments, 1)
	assert.Equal(t, "first!", comments[0]["text"])
	assert.Equal(t, "Commenter", comments[0]["name"])

	// Newest comment leads the list.
	resp, comments = doJSONList(t, app, http.MethodPost, path, commenter, fiber.Map{"text": "second!"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, comments, 2)
	assert.Equal(t, "second!", comments[0]["text"])
}

func TestCreateComment_EmptyText(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)
	author := registerUser(t, app, "Author", "cauthor2@example.com")
	postID := createPost(t, app, author, "p")

	resp, body := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/posts/comment/%d", postID), author, fiber.Map{"text": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Text is required", firstErrorMsg(t, body))
}

func TestCreateComment_MissingPost(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)
	token := registerUser(t, app, "C", "cghost@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/api/posts/comment/999", token, fiber.Map{"text": "hi"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", body["msg"])
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)
	author := registerUser(t, app, "Author", "dauthor@example.com")
	commenter := registerUser(t, app, "Commenter", "dcommenter@example.com")
	postID := createPost(t, app, author, "p")

	_, comments := doJSONList(t, app, http.MethodPost,
		fmt.Sprintf("/api/posts/comment/%d", postID), commenter, fiber.Map{"text": "bye"})
	require.Len(t, comments, 1)
	commentID := uint(comments[0]["id"].(float64))

	resp, remaining := doJSONList(t, app, http.MethodDelete,
		fmt.Sprintf("/api/posts/%d/%d", postID, commentID), commenter, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, remaining)
}

func TestDeleteComment_NonAuthor(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)
	author := registerUser(t, app, "Author", "dauthor2@example.com")
	commenter := registerUser(t, app, "Commenter", "dcommenter2@example.com")
	postID := createPost(t, app, author, "p")

	_, comments := doJSONList(t, app, http.MethodPost,
		fmt.Sprintf("/api/posts/comment/%d", postID), commenter, fiber.Map{"text": "mine"})
	require.Len(t, comments, 1)
	commentID := uint(comments[0]["id"].(float64))

	// The post's author still may not delete someone else's comment.
	resp, body := doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/posts/%d/%d", postID, commentID), author, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User not authorized", body["msg"])
}

func TestDeleteComment_WrongPost(t *testing.T) {
	t.Parallel()

	_, app := newTestServer(t)
	author := registerUser(t, app, "Author", "dauthor3@example.com")
	postA := createPost(t, app, author, "a")
	postB := createPost(t, app, author, "b")

	_, comments := doJSONList(t, app, http.MethodPost,
		fmt.Sprintf("/api/posts/comment/%d", postA), author, fiber.Map{"text": "on a"})
	require.Len(t, comments, 1)
	commentID := uint(comments[0]["id"].(float64))

	resp, body := doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/posts/%d/%d", postB, commentID), author, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Comment not found", body["msg"])
}
