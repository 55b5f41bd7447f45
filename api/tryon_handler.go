package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/soiemaison/storefront-backend/tryon"
	"github.com/soiemaison/storefront-backend/utils"
)

// Uploads above this size are spooled to disk by net/http anyway; this only
// bounds the in-memory portion.
const maxMultipartMemory = 50 << 20

// TryOnHandler owns the /api/try-on endpoint: it receives the multipart
// upload, parks the images in uniquely named temp files, and hands them to
// the try-on service. Temp files are deleted on every path before returning.
type TryOnHandler struct {
	Service   *tryon.Service
	UploadDir string
	Log       *logrus.Logger
}

func NewTryOnHandler(service *tryon.Service, uploadDir string, log *logrus.Logger) *TryOnHandler {
	return &TryOnHandler{Service: service, UploadDir: uploadDir, Log: log}
}

// TryOn handles the virtual try-on request
func (h *TryOnHandler) TryOn(w http.ResponseWriter, r *http.Request) {
	log := h.Log.WithField("api", "try-on")

	if r.Method != http.MethodPost {
		utils.RespondError(w, log, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.RespondError(w, log, fmt.Sprintf("invalid form data: %v", err), http.StatusBadRequest)
		return
	}

	humanFile, _, err := r.FormFile("human_img")
	if err != nil {
		utils.RespondError(w, log, "missing model photo", http.StatusBadRequest)
		return
	}
	defer humanFile.Close()

	humanPath, err := h.saveUpload(humanFile)
	if err != nil {
		utils.RespondError(w, log, "failed to store model photo", http.StatusInternalServerError)
		return
	}
	defer tryon.RemoveQuietly(humanPath, h.Log)

	var garmPath string
	if garmFile, _, err := r.FormFile("garm_img"); err == nil {
		defer garmFile.Close()
		garmPath, err = h.saveUpload(garmFile)
		if err != nil {
			utils.RespondError(w, log, "failed to store garment image", http.StatusInternalServerError)
			return
		}
		defer tryon.RemoveQuietly(garmPath, h.Log)
	}

	req := tryon.Request{
		PersonImagePath:  humanPath,
		GarmentImagePath: garmPath,
		GarmentImageURL:  r.FormValue("garm_img_url"),
		Prompt:           r.FormValue("prompt"),
		Category:         r.FormValue("category"),
	}

	resultURI, err := h.Service.Generate(r.Context(), req)
	if err != nil {
		utils.RespondError(w, log, err.Error(), tryon.StatusFor(err))
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"resultUrl": resultURI})
}

// saveUpload spools one multipart file into a uniquely named temp file so
// concurrent requests cannot collide.
func (h *TryOnHandler) saveUpload(src multipart.File) (string, error) {
	path := filepath.Join(h.UploadDir, uuid.New().String())
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		tryon.RemoveQuietly(path, h.Log)
		return "", err
	}
	return path, nil
}
