package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"pharmacare-api/config"

	"github.com/google/uuid"
)

// Picture kinds, each stored under its own <kind>_images directory.
const (
	KindPharmacy     = "pharmacy"
	KindProduct      = "product"
	KindCategory     = "category"
	KindPrescription = "prescription"
)

// StoredImage describes a persisted upload.
type StoredImage struct {
	Name       string
	PublicPath string
	Size       int64
}

// ImageStore persists uploaded pictures and yields their public path.
type ImageStore interface {
	Save(kind string, file multipart.File, header *multipart.FileHeader) (*StoredImage, error)
}

type localImageStore struct {
	root string
}

func NewLocalImageStore(cfg config.UploadsConfig) ImageStore {
	return &localImageStore{root: cfg.Dir}
}

func (s *localImageStore) Save(kind string, file multipart.File, header *multipart.FileHeader) (*StoredImage, error) {
	name := uuid.New().String() + filepath.Ext(header.Filename)
	dir := filepath.Join(s.root, kind+"_images")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &StoredImage{
		Name:       name,
		PublicPath: "/images/" + kind + "_images/" + name,
		Size:       size,
	}, nil
}
