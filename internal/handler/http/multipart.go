package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/vidora/vidora/internal/adapter"
)

// maxUploadMemory caps the in-memory portion of a parsed multipart form;
// larger file parts spill to temporary files.
const maxUploadMemory = 32 << 20 // 32 MiB

// formFileBlob reads the named file part from an already-parsed multipart
// form. A missing part returns a zero Blob and no error so callers can treat
// optional uploads uniformly.
func formFileBlob(r *http.Request, field string) (adapter.Blob, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return adapter.Blob{}, nil
		}
		return adapter.Blob{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return adapter.Blob{}, err
	}

	return adapter.Blob{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
