package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/domain"
	"github.com/KeerthiPrasad10/marine-predictive-maintenance/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	api := app.Group("/api")

	api.Post("analysis", func(c *fiber.Ctx) error {
		var req domain.AnalysisRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		analysis, err := svcs.Analysis.Run(req)
		if err != nil {
			return c.Status(422).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(analysis)
	})

	api.Get("equipment-types", func(c *fiber.Ctx) error {
		return c.JSON(svcs.OEM.Types())
	})

	api.Get("fleet/:type/patterns", func(c *fiber.Ctx) error {
		patterns := svcs.Fleet.Patterns(c.Params("type"))
		if patterns == nil {
			patterns = []domain.FleetPattern{}
		}
		return c.JSON(patterns)
	})
}
