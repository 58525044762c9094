package handler

import (
	"errors"
	"net/http"

	"github.com/palengke-dev/palengke/internal/api"
	internal_errors "github.com/palengke-dev/palengke/internal/errors"
	"github.com/palengke-dev/palengke/internal/utils"
)

// multipart form fields and overhead get this much room on top of the file itself
const multipartOverhead = 1 << 20

// UploadImage accepts a single multipart file under the "file" field, stores
// it and returns the public URL. A missing file is a client error and nothing
// is written.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	maxRequestSize := h.cfg.Public.Upload.MaxFileSizeBytes + multipartOverhead
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	if err := r.ParseMultipartForm(maxRequestSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
				Message: "File exceeds the upload size limit", StatusCode: http.StatusRequestEntityTooLarge,
			})
			return
		}
		utils.WriteErrorAndStatusCode(w, internal_errors.BadRequest("Body is not a valid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, internal_errors.BadRequest("No file provided"))
		return
	}
	defer file.Close()

	url, err := h.upload.Upload(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.UploadResponse{Url: url})
}
