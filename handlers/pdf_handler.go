package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"alexportfolio/repository"
	"alexportfolio/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
	Logger   *slog.Logger

	mu            sync.Mutex
	lastUploadURL string
}

type schedulePDFResponse struct {
	Success bool   `json:"success"`
	File    string `json:"file"`
	URL     string `json:"url,omitempty"`
}

// SchedulePDF renders the full meetings schedule to a PDF, saves it under
// SavePath and, when R2 is configured, uploads it there as well.
func (h *PDFHandler) SchedulePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "invalid request method")
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		h.Logger.Error("failed to create save directory", "dir", saveDir, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot export schedule")
		return
	}

	pdfBytes, err := utils.GenerateSchedulePDF(r.Context(), h.Repo)
	if err != nil {
		h.Logger.Error("failed to generate schedule PDF", "error", err)
		writeError(w, http.StatusInternalServerError, "cannot export schedule")
		return
	}

	filename := fmt.Sprintf("meetings_%d.pdf", time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		h.Logger.Error("failed to save schedule PDF", "path", savePath, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot export schedule")
		return
	}

	resp := schedulePDFResponse{Success: true, File: filename}

	if utils.R2Configured() {
		url, err := utils.UploadToR2(pdfBytes, filename)
		if err != nil {
			// The local copy exists; the upload is best-effort.
			h.Logger.Warn("failed to upload schedule PDF", "error", err)
		} else {
			resp.URL = url
			h.dropPreviousUpload(url)
		}
	}

	h.Logger.Info("schedule PDF exported", "file", filename)
	writeJSON(w, http.StatusOK, resp)
}

// dropPreviousUpload deletes the superseded export from R2 and remembers
// the new one.
func (h *PDFHandler) dropPreviousUpload(newURL string) {
	h.mu.Lock()
	previous := h.lastUploadURL
	h.lastUploadURL = newURL
	h.mu.Unlock()

	if previous == "" || previous == newURL {
		return
	}
	if err := utils.DeleteFromR2(previous); err != nil {
		h.Logger.Warn("failed to delete superseded schedule PDF", "url", previous, "error", err)
	}
}
