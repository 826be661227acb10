// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"

	"todo_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// resetTokenBytes はリセットトークンの乱数バイト長です（hexエンコードで64文字）。
	resetTokenBytes = 32

	// resetTokenTTL はリセットトークンの有効期間です。
	resetTokenTTL = time.Hour
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// SetResetToken はユーザーのリセットトークンと有効期限を保存します。
	SetResetToken(ctx context.Context, email, token string, expiry time.Time) error

	// ConsumeResetToken はトークンが一致する場合に限り、パスワードハッシュを
	// 置き換えてリセットトークンを消去します（compare-and-clear）。
	// 一致する行がない場合、ErrInvalidResetTokenを返します。
	ConsumeResetToken(ctx context.Context, email, token, newPasswordHash string) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email, role string) (string, error)
}

// ResetMailer はパスワードリセットリンクの帯域外送信を抽象化します。
// リンクはHTTPレスポンスには決して含めず、このインターフェース経由でのみ伝達します。
type ResetMailer interface {
	// SendPasswordReset はリセットリンクを指定されたアドレスに送信します。
	SendPasswordReset(ctx context.Context, to, link string) error
}

// AuthUsecase は認証ビジネスロジックを実装します。
type AuthUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	mailer       ResetMailer
	resetBaseURL string
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
// resetBaseURLはリセットリンクの基点URL（フロントエンドのオリジン）です。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator, mailer ResetMailer, resetBaseURL string) *AuthUsecase {
	return &AuthUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		mailer:       mailer,
		resetBaseURL: resetBaseURL,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// 成功時は作成されたユーザーを返します。パスワードハッシュをレスポンスに
// 含めるかどうかはトランスポート層の責務です。
func (u *AuthUsecase) Register(ctx context.Context, email, password, name string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	// パスワード強度を検証
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		Role:         entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にJWTトークンとユーザーを返します。
// メール未登録とパスワード不一致は区別せず、常にErrInvalidCredentialsを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	// 注入されたジェネレーターを使用してJWTトークンを生成
	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email, user.Role)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}

// ForgotPassword はパスワードリセットトークンを発行します。
// アカウント列挙攻撃を防止するため、メールアドレスが未登録でも成功として扱います。
// ユーザーが存在する場合のみ、乱数トークンを生成・保存し、リセットリンクを
// メーラー経由で帯域外送信します。
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingFields
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// 未登録メールでも成功扱い。内部ログにのみ記録する。
			slog.Info("password reset requested for unknown email", "email", email)
			return nil
		}
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	expiry := time.Now().Add(resetTokenTTL)

	if err := u.users.SetResetToken(ctx, user.Email, token, expiry); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		u.resetBaseURL, token, url.QueryEscape(user.Email))
	if err := u.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		return fmt.Errorf("failed to send reset link: %w", err)
	}
	return nil
}

// ResetPassword はリセットトークンを検証し、パスワードを更新します。
// トークンの消費はcompare-and-clear（条件付きUPDATE）で行い、同一トークンの
// 同時利用でも高々一度しか成功しないことを保証します。
func (u *AuthUsecase) ResetPassword(ctx context.Context, email, token, newPassword string) error {
	if email == "" || token == "" || newPassword == "" {
		return ErrMissingFields
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// ユーザーの存在を漏らさないよう、トークンエラーに丸める
			return ErrInvalidResetToken
		}
		return err
	}

	// 保存済みトークンとの完全一致を要求
	if !user.HasPendingReset() || *user.ResetToken != token {
		return ErrInvalidResetToken
	}
	// 有効期限は現在時刻との厳密な大小比較
	if time.Now().After(*user.ResetTokenExpiry) {
		return ErrResetTokenExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// トークンがまだ一致している場合に限り更新（再利用・二重消費の防止）
	return u.users.ConsumeResetToken(ctx, user.Email, token, string(hashed))
}

// newResetToken は暗号論的乱数からhexエンコードされたトークンを生成します。
func newResetToken() (string, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
