// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"mood_backend/internal/feature/auth/domain/entity"
	"mood_backend/internal/feature/auth/usecase"
)

// accountGorm はAccountRepositoryインターフェースのGORM実装です。
// SQLiteとPostgreSQLの両方のドライバで動作します。
type accountGorm struct {
	db *gorm.DB
}

// accountGormがAccountRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AccountRepository = (*accountGorm)(nil)

// NewAccountRepository は指定されたgorm.DB接続でaccountGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewAccountRepository(db *gorm.DB) *accountGorm {
	return &accountGorm{db: db}
}

// Create はアカウントをデータベースに追加します。
// 同じメールアドレスのアカウントが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
// 重複判定はアプリケーションではなくストレージのユニークインデックスが行うため、
// 同時登録でも成功するのは1件だけです。
func (r *accountGorm) Create(ctx context.Context, a *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでアカウントを取得します。
// アカウントが存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *accountGorm) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByID はIDでアカウントを取得します。
// アカウントが存在しない場合、usecase.ErrAccountNotFoundを返します。
func (r *accountGorm) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// isUniqueViolation はドライバ固有のユニーク制約違反エラーを判定します。
// SQLite: SQLITE_CONSTRAINT_UNIQUE / PostgreSQL: SQLSTATE 23505
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
