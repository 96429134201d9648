package service

import (
	"errors"
	"os"

	"miumiu/internal/domain"
)

// Caption sent together with the special photo
const photoCaption = "Menurutku dia, dia adalah seseorang yang sangat cantik manis dan lucu, dia bernama Friska Desiane Fauziah💖"

// ErrPhotoNotFound means the configured image is missing on disk
var ErrPhotoNotFound = errors.New("photo file not found")

// PhotoService serves the single special image configured for the bot
type PhotoService struct {
	path string
}

// NewPhotoService creates a new photo service
func NewPhotoService(path string) *PhotoService {
	return &PhotoService{path: path}
}

// SpecialPhoto checks the file exists on disk and returns it with its
// caption. Existence is re-checked before every send.
func (s *PhotoService) SpecialPhoto() (*domain.Photo, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, ErrPhotoNotFound
	}
	return &domain.Photo{Path: s.path, Caption: photoCaption}, nil
}
