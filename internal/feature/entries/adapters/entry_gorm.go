package adapters

import (
	"context"

	"gorm.io/gorm"

	"mood_backend/internal/feature/entries/domain/entity"
	"mood_backend/internal/feature/entries/usecase"
)

type entryGorm struct {
	db *gorm.DB
}

var _ usecase.EntryRepository = (*entryGorm)(nil)

func NewEntryRepository(db *gorm.DB) *entryGorm {
	return &entryGorm{db: db}
}

// EntryModel は entries テーブルの行を表す型付きレコードです。
// 全ての読み取りが account_id + timestamp の複合インデックスを通ります。
type EntryModel struct {
	ID        uint   `gorm:"primaryKey"`
	AccountID uint   `gorm:"not null;index:entry_account_ts,priority:1"`
	Timestamp string `gorm:"size:32;not null;index:entry_account_ts,priority:2"`

	Mood    string `gorm:"size:16;not null"`
	Energy  string `gorm:"size:16;not null"`
	Weather string `gorm:"size:16"`
	Sleep   string `gorm:"size:16"`
	Notes   string `gorm:"type:text"`
}

func (EntryModel) TableName() string {
	return "entries"
}

func toModel(e *entity.Entry) EntryModel {
	return EntryModel{
		AccountID: e.AccountID,
		Timestamp: e.Timestamp,
		Mood:      e.Mood,
		Energy:    e.Energy,
		Weather:   e.Weather,
		Sleep:     e.Sleep,
		Notes:     e.Notes,
	}
}

func toEntity(m EntryModel) entity.Entry {
	return entity.Entry{
		ID:        m.ID,
		AccountID: m.AccountID,
		Timestamp: m.Timestamp,
		Mood:      m.Mood,
		Energy:    m.Energy,
		Weather:   m.Weather,
		Sleep:     m.Sleep,
		Notes:     m.Notes,
	}
}

// Create は1件のエントリを永続化し、採番されたIDをentry.IDに書き戻します。
// 書き込みは単一のINSERTであり、全体が永続化されるか何も永続化されないかのいずれかです。
func (r *entryGorm) Create(ctx context.Context, e *entity.Entry) error {
	m := toModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	return nil
}

// FindByAccountID は指定アカウントのエントリをtimestamp降順で返します。
// 同一timestampのタイブレークはid昇順（挿入順）で、結果は決定的です。
// account_idによるフィルタを全ての読み取りに適用し、アカウント間の分離を保証します。
func (r *entryGorm) FindByAccountID(ctx context.Context, accountID uint) ([]entity.Entry, error) {
	var rows []EntryModel
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("timestamp DESC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.Entry, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
