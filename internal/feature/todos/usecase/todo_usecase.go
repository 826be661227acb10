// Package usecase はtodosフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"todo_backend/internal/feature/todos/domain/entity"
)

// TodoRepository はTodoエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TodoRepository interface {
	// ListByOwner は指定ユーザーのTodoを作成日時の降順（新しい順）で返します。
	ListByOwner(ctx context.Context, ownerID uint) ([]entity.Todo, error)

	// Create は新しいTodoをストレージに永続化します。
	Create(ctx context.Context, todo *entity.Todo) error

	// FindByIDAndOwner はidと所有者の両方に一致するTodoを取得します。
	// 一致しない場合、ErrTodoNotFoundを返します。
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Todo, error)

	// Update は既存のTodoを保存します。
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete はidと所有者の両方に一致するTodoを削除します。
	// 一致しない場合、ErrTodoNotFoundを返します。
	Delete(ctx context.Context, id, ownerID uint) error
}

// UpdatePatch は部分更新で変更するフィールドを表します。
// nilのフィールドは変更されません。
type UpdatePatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TodoUsecase はTodoのCRUDビジネスロジックを実装します。
// 所有者スコープの強制はこの層で行います。ownerIDは必ず検証済みの
// セッショントークンから導出された値を渡してください。
type TodoUsecase struct {
	todos TodoRepository
}

// NewTodoUsecase はTodoUsecaseの新しいインスタンスを生成します。
func NewTodoUsecase(todos TodoRepository) *TodoUsecase {
	return &TodoUsecase{todos: todos}
}

// List は指定ユーザーの全Todoを新しい順で返します。
func (u *TodoUsecase) List(ctx context.Context, ownerID uint) ([]entity.Todo, error) {
	return u.todos.ListByOwner(ctx, ownerID)
}

// Create は新しいTodoを作成します。タイトルが空の場合はErrEmptyTitleを返します。
func (u *TodoUsecase) Create(ctx context.Context, ownerID uint, title, description string) (*entity.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	todo := &entity.Todo{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Completed:   false,
	}
	if err := u.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update はTodoを部分更新します。patchで指定されたフィールドのみを変更し、
// 他のフィールドは保持します。所有者が一致しない場合はErrTodoNotFoundを返します。
func (u *TodoUsecase) Update(ctx context.Context, id, ownerID uint, patch UpdatePatch) (*entity.Todo, error) {
	todo, err := u.todos.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, ErrEmptyTitle
		}
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}

	if err := u.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete はTodoを削除します。所有者が一致しない場合はErrTodoNotFoundを返します。
func (u *TodoUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.todos.Delete(ctx, id, ownerID)
}
