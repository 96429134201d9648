package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhotoService_SpecialPhoto_Missing(t *testing.T) {
	service := NewPhotoService(filepath.Join(t.TempDir(), "missing.jpg"))

	photo, err := service.SpecialPhoto()

	assert.ErrorIs(t, err, ErrPhotoNotFound)
	assert.Nil(t, photo)
}

func TestPhotoService_SpecialPhoto_Found(t *testing.T) {
	path := filepath.Join(t.TempDir(), "007.jpg")
	assert.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))

	service := NewPhotoService(path)

	photo, err := service.SpecialPhoto()

	assert.NoError(t, err)
	assert.Equal(t, path, photo.Path)
	assert.Contains(t, photo.Caption, "Friska Desiane Fauziah")
}

func TestPhotoService_SpecialPhoto_RechecksEachCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "007.jpg")
	assert.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))

	service := NewPhotoService(path)

	_, err := service.SpecialPhoto()
	assert.NoError(t, err)

	assert.NoError(t, os.Remove(path))

	_, err = service.SpecialPhoto()
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}
