package spellbook

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/spellscribe/spells-api/internal/entities"
	"github.com/spellscribe/spells-api/internal/errors"
)

type savedSpellRecord struct {
	ID         uint   `gorm:"primaryKey"`
	ChatID     int64  `gorm:"index:idx_chat_spell,unique"`
	SpellAlias string `gorm:"index:idx_chat_spell,unique"`
}

func (savedSpellRecord) TableName() string { return "saved_spells" }

// Migrate creates or updates the spellbook schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&savedSpellRecord{})
}

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a gorm-backed spellbook repository.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SpellAlias == "" {
		return nil, errors.InvalidArgument("spell alias cannot be empty")
	}

	rec := savedSpellRecord{ChatID: input.ChatID, SpellAlias: input.SpellAlias}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, errors.AlreadyExistsf("spell %q already saved for chat %d", input.SpellAlias, input.ChatID)
		}
		return nil, errors.Wrap(err, "failed to save spell")
	}

	return &SaveOutput{Saved: &entities.SavedSpell{ChatID: input.ChatID, SpellAlias: input.SpellAlias}}, nil
}

func (r *gormRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	result := r.db.WithContext(ctx).
		Where("chat_id = ? AND spell_alias = ?", input.ChatID, input.SpellAlias).
		Delete(&savedSpellRecord{})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to delete saved spell")
	}
	if result.RowsAffected == 0 {
		return nil, errors.NotFoundf("spell %q not saved for chat %d", input.SpellAlias, input.ChatID)
	}

	return &DeleteOutput{}, nil
}

func (r *gormRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var rows []savedSpellRecord
	err := r.db.WithContext(ctx).
		Where("chat_id = ?", input.ChatID).
		Order("id asc").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved spells")
	}

	saved := make([]entities.SavedSpell, 0, len(rows))
	for _, rec := range rows {
		saved = append(saved, entities.SavedSpell{ChatID: rec.ChatID, SpellAlias: rec.SpellAlias})
	}

	return &ListOutput{Saved: saved}, nil
}

func (r *gormRepository) GetByIndex(ctx context.Context, input GetByIndexInput) (*GetByIndexOutput, error) {
	list, err := r.List(ctx, ListInput{ChatID: input.ChatID})
	if err != nil {
		return nil, err
	}

	if input.Index < 0 || input.Index >= len(list.Saved) {
		return nil, errors.NotFoundf("no saved spell at index %d for chat %d", input.Index, input.ChatID)
	}

	return &GetByIndexOutput{Saved: &list.Saved[input.Index], Total: len(list.Saved)}, nil
}
