// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mood_backend/internal/feature/auth/domain/entity"
)

const (
	// refreshTokenTTL はリフレッシュセッションの有効期間です。
	refreshTokenTTL = 7 * 24 * time.Hour
	// maxActiveSessions はアカウントごとの同時セッション数の上限です。
	// 上限に達した場合、最も古いセッションが削除されます。
	maxActiveSessions = 5
)

// AccountRepository はアカウントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AccountRepository interface {
	// Create は新しいアカウントをストレージに永続化します。
	// 同じメールアドレスのアカウントが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail は指定されたメールアドレスに一致するアカウントを取得します。
	// アカウントが存在しない場合、ErrAccountNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByID は指定されたIDに一致するアカウントを取得します。
	// アカウントが存在しない場合、ErrAccountNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Account, error)
}

// TokenGenerator はアクセストークン生成のインターフェースを定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたアカウントの署名済みJWTトークンを生成します。
	GenerateToken(accountID uint, email string) (string, error)
}

// LoginResult はログインまたはリフレッシュ成功時の結果を表します。
type LoginResult struct {
	AccountID    uint
	AccessToken  string
	RefreshToken string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	accounts AccountRepository
	sessions SessionRepository
	tokens   TokenGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// sessionsがnilの場合、リフレッシュセッションなしのステートレスJWTモードで動作します。
func NewAuthUsecase(accounts AccountRepository, sessions SessionRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Signup はハッシュ化されたパスワードで新規アカウントを登録します。
// メールアドレスまたはパスワードが空の場合、永続化を試みる前にErrInvalidInputを返します。
// 成功時はちょうど1件のアカウントが永続化され、失敗時は0件です。
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	// ポリシーチェック: ストレージエラーではなく入力エラーとして扱う
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account := &entity.Account{Email: email, Password: string(hashed)}
	return u.accounts.Create(ctx, account)
}

// Login はアカウントを認証し、成功時にアクセストークンとリフレッシュトークンを返します。
// メール未登録とパスワード不一致は区別せず、どちらもErrInvalidCredentialsを返します
// （登録済みメールアドレスの推測を防止するため）。読み取り専用で副作用はセッション発行のみです。
// タイミング攻撃を防止するため、アカウントが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*LoginResult, error) {
	account, err := u.accounts.FindByEmail(ctx, email)

	// アカウントが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = account.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(account.ID, account.Email)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	result := &LoginResult{AccountID: account.ID, AccessToken: token}

	// リフレッシュセッションを発行（セッションストアが利用可能な場合のみ）
	if u.sessions != nil {
		session, sessErr := u.issueSession(ctx, account.ID, userAgent, ipAddress)
		if sessErr != nil {
			return nil, fmt.Errorf("failed to create session: %w", sessErr)
		}
		result.RefreshToken = session.ID
	}

	return result, nil
}

// Refresh はリフレッシュトークンを検証し、新しいトークンペアを発行します。
// 古いセッションは失効させ、新しいセッションに交換します（ローテーション）。
func (u *authUsecase) Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*LoginResult, error) {
	if u.sessions == nil {
		return nil, ErrSessionNotFound
	}

	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if session.IsRevoked() {
		return nil, ErrSessionRevoked
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}

	account, err := u.accounts.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, err
	}

	token, err := u.tokens.GenerateToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// ローテーション: 使用済みセッションを失効させてから新規発行
	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to revoke session: %w", err)
	}
	next, err := u.issueSession(ctx, account.ID, userAgent, ipAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	return &LoginResult{AccountID: account.ID, AccessToken: token, RefreshToken: next.ID}, nil
}

// Logout は指定されたリフレッシュセッションを失効させます。
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	if u.sessions == nil {
		return ErrSessionNotFound
	}
	return u.sessions.Revoke(ctx, refreshToken)
}

// issueSession は新しいリフレッシュセッションを作成します。
// 上限を超えた場合、最も古いセッションを削除してから作成します。
func (u *authUsecase) issueSession(ctx context.Context, accountID uint, userAgent, ipAddress string) (*entity.Session, error) {
	count, err := u.sessions.CountByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if count >= maxActiveSessions {
		if err := u.sessions.DeleteOldestByAccountID(ctx, accountID); err != nil && !errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		AccountID: accountID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
