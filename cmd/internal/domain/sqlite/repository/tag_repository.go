package repository

import (
	"errors"
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils/uid"

	"gorm.io/gorm"
)

type DefaultTagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *DefaultTagRepository {
	return &DefaultTagRepository{db: db}
}

func (t *DefaultTagRepository) FindByNote(noteID string) ([]*entity.Tag, error) {
	var tags []*entity.Tag
	err := t.db.
		Where("note_id = ?", noteID).
		Order("created_at ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// FindOwned returns the tag only if it is attached to an active note of the owner.
func (t *DefaultTagRepository) FindOwned(ownerID, tagID int64) (*entity.Tag, error) {
	var tag entity.Tag
	err := t.db.
		Joins("JOIN notes ON notes.id = tags.note_id").
		Where("tags.id = ? AND notes.owner_id = ? AND notes.deleted_at IS NULL", tagID, ownerID).
		First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// ReplaceForNote drops every tag of the note and inserts names in their place.
func (t *DefaultTagRepository) ReplaceForNote(noteID string, names []string, now int64) ([]*entity.Tag, error) {
	tags := make([]*entity.Tag, len(names))
	for i, name := range names {
		tags[i] = &entity.Tag{
			ID:        uid.Generate(),
			NoteID:    noteID,
			Name:      name,
			CreatedAt: now,
		}
	}

	err := t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", noteID).Delete(&entity.Tag{}).Error; err != nil {
			return err
		}

		if len(tags) == 0 {
			return nil
		}
		return tx.Create(&tags).Error
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (t *DefaultTagRepository) Delete(tag *entity.Tag) error {
	return t.db.Delete(tag).Error
}

// CountByOwner groups the tags on the owner's active notes by name, most used
// first. Ties come back in whatever order the engine groups them. A limit <= 0
// returns every tag.
func (t *DefaultTagRepository) CountByOwner(ownerID int64, limit int) ([]*entity.TagCount, error) {
	var counts []*entity.TagCount
	db := t.db.
		Model(&entity.Tag{}).
		Select("tags.name AS name, COUNT(*) AS count").
		Joins("JOIN notes ON notes.id = tags.note_id").
		Where("notes.owner_id = ? AND notes.deleted_at IS NULL", ownerID).
		Group("tags.name").
		Order("count DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}

	if err := db.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// DistinctByOwner lists every tag name used on the owner's active notes, A-Z.
func (t *DefaultTagRepository) DistinctByOwner(ownerID int64) ([]string, error) {
	var names []string
	err := t.db.
		Model(&entity.Tag{}).
		Distinct().
		Joins("JOIN notes ON notes.id = tags.note_id").
		Where("notes.owner_id = ? AND notes.deleted_at IS NULL", ownerID).
		Order("tags.name ASC").
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
