package handler

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fileorg/internal/model"
	"fileorg/internal/service"
)

// Session keys of the upload → analyze → organize flow.
const (
	sessUploadID = "upload_id"
	sessMode     = "mode"
	sessSort     = "sort_order"
)

// UploadConfig controls where uploads land and which files are accepted.
type UploadConfig struct {
	Dir string
	// AllowedExtensions is a lower-case allow-list without dots; empty allows all.
	AllowedExtensions []string
}

func (u UploadConfig) allowed(name string) bool {
	if len(u.AllowedExtensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return slices.Contains(u.AllowedExtensions, ext)
}

type uploadResponse struct {
	UploadID  string   `json:"upload_id"`
	Files     []string `json:"files"`
	Strategy  string   `json:"strategy"`
	SortOrder string   `json:"sort_order"`
}

// UploadFiles godoc
// @Summary Upload files to organize
// @Description Saves the files into a fresh upload directory and remembers the chosen strategy and sort order in the session. A plan analyzed for the session's previous upload is discarded.
// @Tags organize
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to organize (repeatable)"
// @Param mode formData string false "Strategy: 1-5 or extension|date|pattern|manual|ai" default(1)
// @Param sort_order formData string false "Sort key: 1-5 or name|created|modified|size|size-desc" default(1)
// @Success 201 {object} uploadResponse
// @Failure 400 {object} errorPayload
// @Router /uploads [post]
func UploadFiles(store *session.Store, plans *service.PlanCache, cfg UploadConfig, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil || len(form.File["files"]) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "no files selected")
		}
		strategy, err := model.ParseStrategy(c.FormValue("mode", "1"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MODE", "invalid organization mode")
		}
		sortKey, err := model.ParseSortKey(c.FormValue("sort_order", "1"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SORT_ORDER", "invalid sort order")
		}

		files := form.File["files"]
		names := make([]string, 0, len(files))
		for _, fh := range files {
			name := safeFilename(fh.Filename)
			if name == "" {
				continue
			}
			if !cfg.allowed(name) {
				return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "file type not allowed: "+name)
			}
			names = append(names, name)
		}
		if len(names) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "no files selected")
		}

		id := uuid.NewString()
		dir := filepath.Join(cfg.Dir, id)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("create upload directory", zap.String("dir", dir), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		for _, fh := range files {
			name := safeFilename(fh.Filename)
			if name == "" {
				continue
			}
			if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
				logger.Error("save upload", zap.String("file", name), zap.Error(err))
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		sess, err := store.Get(c)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if prev, ok := sess.Get(sessUploadID).(string); ok && prev != id {
			plans.Take(prev)
		}
		sess.Set(sessUploadID, id)
		sess.Set(sessMode, int(strategy))
		sess.Set(sessSort, int(sortKey))
		if err := sess.Save(); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		logger.Info("files uploaded", zap.String("upload_id", id), zap.Int("files", len(names)))
		return c.Status(fiber.StatusCreated).JSON(uploadResponse{
			UploadID:  id,
			Files:     names,
			Strategy:  strategy.String(),
			SortOrder: sortKey.String(),
		})
	}
}

// safeFilename reduces an uploaded file name to a plain base name made of
// ASCII letters, digits, dots, dashes and underscores. Whitespace becomes an
// underscore and leading dots are removed so no hidden or relative names
// reach the disk. It returns "" when nothing usable is left.
func safeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base("/" + name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		}
	}
	return strings.TrimLeft(b.String(), "._")
}
