package handler

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"fileorg/internal/model"
	"fileorg/internal/scanner"
	"fileorg/internal/service"
)

type analyzeFile struct {
	Name       string  `json:"name"`
	SizeMB     float64 `json:"size_mb"`
	CreatedAt  string  `json:"created_at"`
	ModifiedAt string  `json:"modified_at"`
	Category   string  `json:"category"`
}

type analyzeResponse struct {
	UploadID     string         `json:"upload_id"`
	Strategy     string         `json:"strategy"`
	SortKey      string         `json:"sort_key"`
	Empty        bool           `json:"empty"`
	CurrentTree  []string       `json:"current_tree"`
	ProposedTree []string       `json:"proposed_tree"`
	Files        []analyzeFile  `json:"files"`
	Categories   map[string]int `json:"categories"`
}

type organizeRequest struct {
	// Overrides replaces the proposed category of individual files.
	Overrides map[string]string `json:"overrides"`
}

type organizeResponse struct {
	UploadID string `json:"upload_id"`
	*service.Result
}

// uploadState is what the session remembers between the steps of one upload.
type uploadState struct {
	id       string
	strategy model.Strategy
	sortKey  model.SortKey
}

func loadUpload(store *session.Store, c *fiber.Ctx) (uploadState, bool, error) {
	sess, err := store.Get(c)
	if err != nil {
		return uploadState{}, false, err
	}
	id, _ := sess.Get(sessUploadID).(string)
	if id == "" {
		return uploadState{}, false, nil
	}
	mode, _ := sess.Get(sessMode).(int)
	sortKey, _ := sess.Get(sessSort).(int)
	st := uploadState{id: id, strategy: model.Strategy(mode), sortKey: model.SortKey(sortKey)}
	if !st.strategy.Valid() {
		st.strategy = model.StrategyExtension
	}
	if !st.sortKey.Valid() {
		st.sortKey = model.SortByName
	}
	return st, true, nil
}

// AnalyzeUpload godoc
// @Summary Propose an organization for the current upload
// @Description Scans the upload directory of this session and classifies its files without moving anything.
// @Tags organize
// @Produce json
// @Success 200 {object} analyzeResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /analyze [get]
func AnalyzeUpload(store *session.Store, svc service.OrganizerService, plans *service.PlanCache, uploadDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		up, ok, err := loadUpload(store, c)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "NO_UPLOAD", "upload files first")
		}

		dir := filepath.Join(uploadDir, up.id)
		plan, err := svc.Analyze(c.UserContext(), dir, up.strategy, up.sortKey, nil)
		if err != nil {
			if errors.Is(err, scanner.ErrDirectoryNotFound) {
				return writeError(c, fiber.StatusNotFound, "UPLOAD_NOT_FOUND", "upload directory not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		plans.Put(up.id, plan)

		files := make([]analyzeFile, 0, len(plan.Files))
		for _, f := range plan.Files {
			cat, _ := plan.Assignment.Get(f.Name)
			files = append(files, analyzeFile{
				Name:       f.Name,
				SizeMB:     f.SizeMB(),
				CreatedAt:  f.CreatedAt.Format("2006-01-02 15:04:05"),
				ModifiedAt: f.ModifiedAt.Format("2006-01-02 15:04:05"),
				Category:   cat,
			})
		}

		return c.JSON(analyzeResponse{
			UploadID:     up.id,
			Strategy:     plan.Strategy.String(),
			SortKey:      plan.SortKey.String(),
			Empty:        plan.Empty,
			CurrentTree:  plan.CurrentTree,
			ProposedTree: plan.ProposedTree,
			Files:        files,
			Categories:   plan.Categories,
		})
	}
}

// OrganizeUpload godoc
// @Summary Execute the analyzed plan
// @Description Moves the uploaded files into their category folders. Overrides in the body replace individual proposed categories.
// @Tags organize
// @Accept json
// @Produce json
// @Param request body organizeRequest false "Per-file category overrides"
// @Success 200 {object} organizeResponse
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /organize [post]
func OrganizeUpload(store *session.Store, svc service.OrganizerService, plans *service.PlanCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		up, ok, err := loadUpload(store, c)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "NO_UPLOAD", "upload files first")
		}

		var req organizeRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}

		plan, ok := plans.Get(up.id)
		if !ok {
			return writeError(c, fiber.StatusConflict, "PLAN_REQUIRED", "analyze the upload before organizing")
		}
		if len(req.Overrides) > 0 {
			plan = plan.WithOverrides(req.Overrides)
		}

		res, err := svc.Organize(c.UserContext(), plan)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyDirectory):
				return writeError(c, fiber.StatusUnprocessableEntity, "EMPTY_DIRECTORY", "no files to organize")
			case errors.Is(err, service.ErrPlanRequired):
				return writeError(c, fiber.StatusConflict, "PLAN_REQUIRED", "analyze the upload before organizing")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		plans.Take(up.id)

		return c.JSON(organizeResponse{UploadID: up.id, Result: res})
	}
}
