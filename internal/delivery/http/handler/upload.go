package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
)

const maxUploadSize = 10 << 20 // 10 MiB

// formFile pulls the optional picture out of a multipart request. A
// missing file is not an error.
func formFile(r *http.Request, field string) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return file, header, nil
}
