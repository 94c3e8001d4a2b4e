package policy

import (
	"smartnotes/cmd/internal/domain/entity"
	"smartnotes/cmd/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotePolicy(t *testing.T) {
	p := NewNotePolicy()
	owner := &entity.User{ID: 1}
	note := &entity.Note{ID: "a", OwnerID: 1}

	assert.Nil(t, p.CanAccess(note, owner))
	assert.Equal(t, apierror.UnauthorizedError, p.CanAccess(note, nil))
	assert.Equal(t, apierror.NotFoundError, p.CanAccess(note, &entity.User{ID: 2}))
	assert.Equal(t, apierror.NotFoundError, p.CanAccess(nil, owner))
	assert.Equal(t, apierror.UnauthorizedError, p.RequireActor(nil))
}
