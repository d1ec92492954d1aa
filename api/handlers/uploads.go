package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"
)

// uploadFolder is the media-host folder case documents land in. A case_id
// query parameter scopes the upload to that case's subfolder.
const uploadFolder = "ho_so_vu_an"

// UploadsHandler handles signed document upload requests
type UploadsHandler struct{}

// GenerateSignature signs an upload request so the browser can push case
// documents straight to the media host without routing bytes through us.
// Signed parameters are serialized in alphabetical order, as the host
// requires.
func (u UploadsHandler) GenerateSignature(w http.ResponseWriter, r *http.Request) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	folder := uploadFolder
	if caseID := r.URL.Query().Get("case_id"); caseID != "" {
		folder = uploadFolder + "/" + caseID
	}

	h := hmac.New(sha1.New, []byte(apiSecret))
	h.Write([]byte("folder=" + folder + "&timestamp=" + timestamp + "&upload_preset=" + uploadPreset))
	signature := hex.EncodeToString(h.Sum(nil))

	response := map[string]string{
		"timestamp": timestamp,
		"folder":    folder,
		"signature": signature,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
