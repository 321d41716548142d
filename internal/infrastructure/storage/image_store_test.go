package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pharmacare-api/config"
)

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func TestLocalImageStoreSave(t *testing.T) {
	root := t.TempDir()
	store := NewLocalImageStore(config.UploadsConfig{Dir: root})

	content := []byte("fake image bytes")
	file := memoryFile{bytes.NewReader(content)}
	header := &multipart.FileHeader{Filename: "photo.png"}

	stored, err := store.Save(KindPharmacy, file, header)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasSuffix(stored.Name, ".png") {
		t.Errorf("stored name = %q, want .png extension kept", stored.Name)
	}
	if stored.Size != int64(len(content)) {
		t.Errorf("size = %d, want %d", stored.Size, len(content))
	}
	if stored.PublicPath != "/images/pharmacy_images/"+stored.Name {
		t.Errorf("public path = %q", stored.PublicPath)
	}

	onDisk, err := os.ReadFile(filepath.Join(root, "pharmacy_images", stored.Name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(onDisk, content) {
		t.Error("stored content differs from upload")
	}
}

func TestLocalImageStoreSeparatesKinds(t *testing.T) {
	root := t.TempDir()
	store := NewLocalImageStore(config.UploadsConfig{Dir: root})
	header := &multipart.FileHeader{Filename: "scan.jpg"}

	product, err := store.Save(KindProduct, memoryFile{bytes.NewReader([]byte("a"))}, header)
	if err != nil {
		t.Fatalf("Save product: %v", err)
	}
	prescription, err := store.Save(KindPrescription, memoryFile{bytes.NewReader([]byte("b"))}, header)
	if err != nil {
		t.Fatalf("Save prescription: %v", err)
	}

	if !strings.HasPrefix(product.PublicPath, "/images/product_images/") {
		t.Errorf("product path = %q", product.PublicPath)
	}
	if !strings.HasPrefix(prescription.PublicPath, "/images/prescription_images/") {
		t.Errorf("prescription path = %q", prescription.PublicPath)
	}
}
