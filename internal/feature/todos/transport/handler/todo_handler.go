// Package handler はtodosフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/transport/http/dto"
	"todo_backend/internal/feature/todos/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// TodoUsecase はTodo操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TodoUsecase interface {
	// List は指定ユーザーの全Todoを新しい順で返します。
	List(ctx context.Context, ownerID uint) ([]entity.Todo, error)
	// Create は新しいTodoを作成します。
	Create(ctx context.Context, ownerID uint, title, description string) (*entity.Todo, error)
	// Update はTodoを部分更新します。
	Update(ctx context.Context, id, ownerID uint, patch usecase.UpdatePatch) (*entity.Todo, error)
	// Delete はTodoを削除します。
	Delete(ctx context.Context, id, ownerID uint) error
}

// TodoHandler はTodo操作のHTTPリクエストを処理します。
// 所有者IDは必ず検証済みトークン由来のPrincipalから取得し、
// クライアントが指定したユーザーIDは決して使用しません。
type TodoHandler struct {
	todos TodoUsecase
}

// NewTodoHandler はTodoHandlerの新しいインスタンスを生成します。
func NewTodoHandler(todos TodoUsecase) *TodoHandler {
	return &TodoHandler{todos: todos}
}

// principal は認証ミドルウェアが格納したPrincipalを取得します。
// 取得できない場合は401を返してリクエストを終了します。
func principal(c *gin.Context) (jwtmw.Principal, bool) {
	p, ok := jwtmw.PrincipalFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
	}
	return p, ok
}

// parseID は:idパスパラメータを数値に変換します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// List は認証済みユーザーのTodo一覧を返すAPIです。
// Usecaseを呼び出して一覧を取得し、DTOに変換してJSONレスポンスとして返します。
func (h *TodoHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	todos, err := h.todos.List(c.Request.Context(), p.UserID)
	if err != nil {
		slog.Error("todo list failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	out := make([]dto.TodoItem, 0, len(todos))
	for i := range todos {
		out = append(out, dto.NewTodoItem(&todos[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create はTodo作成APIエンドポイントを処理します。
// - タイトル未指定時は400を返却
// - 成功時は201と作成されたTodoを返却
func (h *TodoHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req dto.CreateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Title required"})
		return
	}
	todo, err := h.todos.Create(c.Request.Context(), p.UserID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Title required"})
			return
		}
		slog.Error("todo create failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, dto.TodoRes{
		Success: true,
		Message: "Task created successfully!",
		Todo:    dto.NewTodoItem(todo),
	})
}

// Update はTodo部分更新APIエンドポイントを処理します。
// 指定されたフィールドのみを変更します。他ユーザーのTodoと存在しないTodoは
// どちらも404を返します。
func (h *TodoHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}
	patch := usecase.UpdatePatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	todo, err := h.todos.Update(c.Request.Context(), id, p.UserID, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTodoNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "Task not found"})
		case errors.Is(err, usecase.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Title required"})
		default:
			slog.Error("todo update failed", "error", err, "user_id", p.UserID, "todo_id", id)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.TodoRes{
		Success: true,
		Message: "Task updated successfully!",
		Todo:    dto.NewTodoItem(todo),
	})
}

// Delete はTodo削除APIエンドポイントを処理します。
// 他ユーザーのTodoと存在しないTodoはどちらも404を返します。
func (h *TodoHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.todos.Delete(c.Request.Context(), id, p.UserID); err != nil {
		if errors.Is(err, usecase.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "Task not found"})
			return
		}
		slog.Error("todo delete failed", "error", err, "user_id", p.UserID, "todo_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Success: true, Message: "Task deleted successfully!"})
}
