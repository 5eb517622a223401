package handler

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"
)

const defaultQRSize = 300

// ShareHandler renders join QR codes for the lobby screen.
type ShareHandler struct {
	baseURL string
}

// NewShareHandler creates a new share handler. The join link base comes from
// PUBLIC_BASE_URL so QR codes point at the deployed frontend.
func NewShareHandler() *ShareHandler {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return &ShareHandler{baseURL: base}
}

// JoinQR handles GET /v1/sessions/{code}/qr
func (h *ShareHandler) JoinQR(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	size := defaultQRSize
	if s := r.URL.Query().Get("size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 1024 {
			size = n
		}
	}

	joinURL := fmt.Sprintf("%s/join/%s", h.baseURL, code)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, size)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
