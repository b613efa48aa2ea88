package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"fileorg/internal/service"
)

// Deps are the collaborators of the HTTP layer.
type Deps struct {
	// DB is optional; nil reports the database as disabled on /health.
	DB        *sql.DB
	Organizer service.OrganizerService
	History   service.HistoryService
	Sessions  *session.Store
	Plans     *service.PlanCache
	Uploads   UploadConfig
	Logger    *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Post("/uploads", UploadFiles(d.Sessions, d.Plans, d.Uploads, d.Logger))
	app.Get("/analyze", AnalyzeUpload(d.Sessions, d.Organizer, d.Plans, d.Uploads.Dir))
	app.Post("/organize", OrganizeUpload(d.Sessions, d.Organizer, d.Plans))

	app.Get("/runs", ListRuns(d.History))
	app.Get("/runs/:id", GetRun(d.History))
	app.Get("/runs/:id/report", GetRunReport(d.History))
}
