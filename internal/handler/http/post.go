package http

import (
	"net/http"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), payload)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusCreated, "Create post successfully", post)
}

func (h *Handler) getAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.GetAllPosts(r.Context(), queryParams(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Get all posts successfully", posts)
}

func (h *Handler) getPostByID(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "id")
	if err != nil {
		renderError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPostByID(r.Context(), postID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Get post successfully", post)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "id")
	if err != nil {
		renderError(w, r, err)
		return
	}

	payload, err := decodePayload(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), postID, payload)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Update post successfully", post)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := idParam(r, "id")
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), postID); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Delete post successfully", map[string]string{
		"message": "Post deleted successfully",
	})
}

func (h *Handler) countPostsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userId")
	if err != nil {
		renderError(w, r, err)
		return
	}

	count, err := h.services.PostService.CountPostsByUser(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Count posts successfully", map[string]int64{
		"count": count,
	})
}
