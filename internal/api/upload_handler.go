package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"recruitdesk/internal/document"
	"recruitdesk/internal/duplicate"
	"recruitdesk/internal/resume"
)

// rawTextPreviewLimit caps the raw-text echo in the upload response.
const rawTextPreviewLimit = 2000

// UploadResumeHandler parses an uploaded resume and checks for duplicates
// @Summary Upload and parse resume
// @Description Upload a resume (PDF/DOCX/DOC/RTF/ODT/TXT, max 10MB), extract candidate fields, derive a fingerprint and run the advisory duplicate check. Extraction is best-effort: unparseable text yields empty fields, never an error.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /upload/resume [post]
func (a *API) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !document.Supported(header.Filename) {
		writeError(w, http.StatusBadRequest, "invalid file type (supported: PDF, DOCX, DOC, RTF, ODT, TXT)")
		return
	}

	doc, err := a.extractor.ExtractText(header.Filename, file)
	if err != nil {
		log.Printf("Document conversion failed: %v", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse file: %v", err))
		return
	}

	log.Printf("Resume parsed: %s (%d bytes text)", doc.Filename, len(doc.Text))

	parsed := resume.ParseText(doc.Text)
	fingerprint := resume.Fingerprint(parsed.Email, parsed.Phone, parsed.Name)

	duplicates := a.checkDuplicates(r, duplicate.Input{
		Email:       parsed.Email,
		Phone:       parsed.Phone,
		Name:        parsed.Name,
		Fingerprint: fingerprint,
	})

	rawText := doc.Text
	if len(rawText) > rawTextPreviewLimit {
		rawText = rawText[:rawTextPreviewLimit]
	}

	response := map[string]interface{}{
		"parsed":             parsed,
		"fingerprint":        fingerprint,
		"duplicates":         duplicates,
		"rawText":            rawText,
		"filename":           doc.Filename,
		"fileSize":           doc.FileSize,
		"processing_time_ms": time.Since(startTime).Milliseconds(),
	}
	if len(duplicates) > 0 {
		response["duplicateAlert"] = duplicate.FormatAlert(duplicates)
	}

	writeJSON(w, http.StatusOK, response)
}
