package repository

import (
	"smartnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSummaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *DefaultSummaryRepository {
	return &DefaultSummaryRepository{db: db}
}

// FindByNote returns the summaries of a note, newest first.
func (s *DefaultSummaryRepository) FindByNote(noteID string) ([]*entity.Summary, error) {
	var summaries []*entity.Summary
	err := s.db.
		Where("note_id = ?", noteID).
		Order("created_at DESC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *DefaultSummaryRepository) Save(summary *entity.Summary) error {
	return s.db.Save(summary).Error
}
