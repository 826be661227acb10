// Package adapters はtodosフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo_backend/internal/feature/todos/domain/entity"
	"todo_backend/internal/feature/todos/usecase"
)

// todoMySQL はTodoRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type todoMySQL struct {
	db *gorm.DB
}

// todoMySQLがTodoRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TodoRepository = (*todoMySQL)(nil)

// NewTodoMySQL は指定されたgorm.DB接続でtodoMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewTodoMySQL(db *gorm.DB) *todoMySQL {
	return &todoMySQL{db: db}
}

// ListByOwner は指定ユーザーのTodoを作成日時の降順で返します。
func (r *todoMySQL) ListByOwner(ctx context.Context, ownerID uint) ([]entity.Todo, error) {
	var todos []entity.Todo
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// Create はTodoをデータベースに追加します。
func (r *todoMySQL) Create(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// FindByIDAndOwner はidと所有者の両方に一致するTodoを取得します。
// 他ユーザーのTodoと存在しないTodoは区別せず、どちらもErrTodoNotFoundを返します。
func (r *todoMySQL) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Todo, error) {
	var todo entity.Todo
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// Update は既存のTodoを保存します。
func (r *todoMySQL) Update(ctx context.Context, todo *entity.Todo) error {
	return r.db.WithContext(ctx).Save(todo).Error
}

// Delete はidと所有者の両方に一致するTodoを削除します。
// 削除対象がない場合、ErrTodoNotFoundを返します。
func (r *todoMySQL) Delete(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&entity.Todo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTodoNotFound
	}
	return nil
}
