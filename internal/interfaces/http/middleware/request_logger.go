package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger mede o tempo de resposta das rotas críticas
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		// Rotas monitoradas: cálculo/listagem de diagnósticos e relatório
		monitoredRoutes := []string{
			"/diagnostics",
			"/pillars",
		}

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		log.Printf(
			"[REQUEST] %s %s - %d - Duration: %v",
			c.Method(),
			path,
			c.Response().StatusCode(),
			time.Since(start),
		)

		return err
	}
}
