// Package webapi assembles the Fiber application for the wallet API.
package webapi

import (
	"errors"
	"strings"

	"github.com/Elias-Manica/My-wallet-back/pkg/config"
	authsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/auth"
	walletsvc "github.com/Elias-Manica/My-wallet-back/pkg/service/wallet"
	authapi "github.com/Elias-Manica/My-wallet-back/webapi/auth"
	"github.com/Elias-Manica/My-wallet-back/webapi/common"
	walletapi "github.com/Elias-Manica/My-wallet-back/webapi/wallet"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp builds the Fiber app with middleware and all wallet routes.
func SetupApp(authSvc *authsvc.Service, walletSvc *walletsvc.Service, cfg *config.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "my-wallet",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return common.MessageJSON(c, code, err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.MessageJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		},
	}))

	app.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// Liveness probe.
	app.Get("/", func(c *fiber.Ctx) error {
		return common.MessageJSON(c, fiber.StatusOK, "ok")
	})

	authapi.Routes(app, authSvc)
	walletapi.Routes(app, walletSvc, authSvc)

	return app
}
