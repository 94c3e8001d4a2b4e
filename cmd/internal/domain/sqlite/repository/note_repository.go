package repository

import (
	"errors"
	"smartnotes/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

// Search runs the composed query and returns the matching notes with their tags.
func (d *DefaultNoteRepository) Search(q *NoteQuery) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.
		Model(&entity.Note{}).
		Scopes(q.Scope).
		Preload("Tags").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindTexts fetches up to limit active notes of the owner, title and content
// only, in whatever order the store returns them.
func (d *DefaultNoteRepository) FindTexts(ownerID int64, limit int) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.
		Select("title", "content").
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindDeleted(ownerID int64, limit int) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.
		Where("owner_id = ? AND deleted_at IS NOT NULL", ownerID).
		Order("deleted_at DESC").
		Limit(limit).
		Preload("Tags").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindActiveByID returns nil when the note does not exist, belongs to
// someone else or is soft-deleted.
func (d *DefaultNoteRepository) FindActiveByID(ownerID int64, id string) (*entity.Note, error) {
	var note entity.Note
	err := d.db.
		Preload("Tags").
		Where("id = ? AND owner_id = ? AND deleted_at IS NULL", id, ownerID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByID is FindActiveByID without the deleted filter.
func (d *DefaultNoteRepository) FindByID(ownerID int64, id string) (*entity.Note, error) {
	var note entity.Note
	err := d.db.
		Preload("Tags").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Omit("Tags").Save(note).Error
}

func (d *DefaultNoteRepository) SoftDelete(note *entity.Note, at int64) error {
	err := d.db.Model(note).Update("deleted_at", at).Error
	if err != nil {
		return err
	}
	note.DeletedAt = &at
	return nil
}

func (d *DefaultNoteRepository) Restore(note *entity.Note) error {
	err := d.db.Model(note).Update("deleted_at", nil).Error
	if err != nil {
		return err
	}
	note.DeletedAt = nil
	return nil
}
