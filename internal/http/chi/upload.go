package chi

import (
	"encoding/json"
	"net/http"

	"github.com/marcelsud/bookstore-catalog/upload"
)

// maxUploadMemory bounds how much of a multipart body is buffered in memory
const maxUploadMemory = 32 << 20 // 32 MB

// uploadFieldName is the multipart form field carrying the cover image
const uploadFieldName = "file"

// uploadResponse carries the public path of the stored file.
// The client embeds it as the book's cover field.
type uploadResponse struct {
	FilePath string `json:"filePath"`
}

// postUpload handles POST /upload (multipart, single file field)
func postUpload(store upload.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeUploadError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		file, header, err := r.FormFile(uploadFieldName)
		if err != nil {
			// Missing file is a client error, not a server fault
			writeUploadError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		filePath, err := store.Save(r.Context(), uploadFieldName, header.Filename, file)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(uploadResponse{FilePath: filePath}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func writeUploadError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
