package entity

import "time"

// Picture holds the metadata recorded for an uploaded image. The fields
// are only mutually consistent when an upload succeeded; Picture is the
// public /images/... path, ImageName the stored filename on disk.
type Picture struct {
	Picture        string     `gorm:"type:varchar(255)" json:"picture,omitempty"`
	ImageName      string     `gorm:"type:varchar(255)" json:"imageName,omitempty"`
	ImageSize      int64      `json:"imageSize,omitempty"`
	ImageUpdatedAt *time.Time `json:"imageUpdatedAt,omitempty"`
}

// SetPicture records the metadata of a freshly stored image.
func (p *Picture) SetPicture(publicPath, name string, size int64) {
	now := time.Now()
	p.Picture = publicPath
	p.ImageName = name
	p.ImageSize = size
	p.ImageUpdatedAt = &now
}
