package handler

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"receiptapi/docs"
	"receiptapi/internal/http/middleware"
	"receiptapi/internal/service"
	"receiptapi/internal/storage"
)

// Deps are the collaborators the HTTP layer needs. Metrics may be nil to
// leave /metrics unmounted.
type Deps struct {
	DB       *sql.DB
	Store    storage.Storage
	Receipts service.ReceiptService
	Metrics  http.Handler
	Log      *zap.Logger
}

// RegisterRoutes attaches every HTTP route to app.
func RegisterRoutes(app *fiber.App, d Deps) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	app.Get("/health", HealthCheck(d.DB, d.Store))
	app.Get("/healthz", LivenessProbe())
	if d.Metrics != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(d.Metrics))
	}
	app.Get("/swagger/*", SwaggerUI())

	app.Get("/amount-in-words", AmountInWords())

	r := app.Group("/receipts")
	r.Get("/", ListReceipts(d.Receipts, log))
	r.Post("/", CreateReceipt(d.Receipts, log))
	r.Post("/preview", PreviewReceipt(d.Receipts, log))
	r.Get("/:id", GetReceipt(d.Receipts, log))
	r.Get("/:id/download", DownloadReceipt(d.Receipts, log))
	r.Get("/:id/url", ReceiptURL(d.Receipts, log))
	r.Delete("/:id", DeleteReceipt(d.Receipts, log))
}

// SwaggerUI serves the generated OpenAPI document with the host and scheme
// the client used, so the UI works behind proxies.
func SwaggerUI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get(fiber.HeaderHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
