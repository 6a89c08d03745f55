package http

import (
	"net/http"
)

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.CreateTodo(r.Context(), payload)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusCreated, "Create todo successfully", todo)
}

func (h *Handler) getAllTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.services.TodoService.GetAllTodos(r.Context(), queryParams(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Get all todos successfully", todos)
}

func (h *Handler) getTodoByID(w http.ResponseWriter, r *http.Request) {
	todoID, err := idParam(r, "id")
	if err != nil {
		renderError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.GetTodoByID(r.Context(), todoID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Get todo successfully", todo)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := idParam(r, "id")
	if err != nil {
		renderError(w, r, err)
		return
	}

	payload, err := decodePayload(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.UpdateTodo(r.Context(), todoID, payload)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Update todo successfully", todo)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	todoID, err := idParam(r, "id")
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err = h.services.TodoService.DeleteTodo(r.Context(), todoID); err != nil {
		renderError(w, r, err)
		return
	}

	renderSuccess(w, r, http.StatusOK, "Delete todo successfully", map[string]string{
		"message": "Todo deleted successfully",
	})
}
