package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/RobertCastro/e-commerce-payment-service/internal/config"
	checkouthandler "github.com/RobertCastro/e-commerce-payment-service/internal/delivery/http/handler/checkout"
	producthandler "github.com/RobertCastro/e-commerce-payment-service/internal/delivery/http/handler/product"
	webhookhandler "github.com/RobertCastro/e-commerce-payment-service/internal/delivery/http/handler/webhook"
	"github.com/RobertCastro/e-commerce-payment-service/internal/delivery/middleware"
	"github.com/RobertCastro/e-commerce-payment-service/internal/gateway/wompi"
	"github.com/RobertCastro/e-commerce-payment-service/internal/metrics"
	pgcustomer "github.com/RobertCastro/e-commerce-payment-service/internal/repository/postgres/customer"
	pgdelivery "github.com/RobertCastro/e-commerce-payment-service/internal/repository/postgres/delivery"
	pgproduct "github.com/RobertCastro/e-commerce-payment-service/internal/repository/postgres/product"
	pgtransaction "github.com/RobertCastro/e-commerce-payment-service/internal/repository/postgres/transaction"
	checkoutuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/checkout"
	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
	webhookuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/webhook"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, db *pgxpool.Pool, log *zap.Logger, m *metrics.Metrics) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// Stores
	productStore := pgproduct.NewProductStoreAdapter(pgproduct.NewProductRepo(db))
	customerStore := pgcustomer.NewCustomerStoreAdapter(pgcustomer.NewCustomerRepo(db))
	deliveryStore := pgdelivery.NewDeliveryStoreAdapter(pgdelivery.NewDeliveryRepo(db))
	transactionStore := pgtransaction.NewTransactionStoreAdapter(pgtransaction.NewTransactionRepo(db))

	// Gateway
	gateway := wompi.NewClient(wompi.Config{
		APIURL:       cfg.WompiAPIURL,
		PublicKey:    cfg.WompiPublicKey,
		PrivateKey:   cfg.WompiPrivateKey,
		IntegrityKey: cfg.WompiIntegrityKey,
		RedirectURL:  cfg.WompiRedirectURL,
	}, log)

	// Products wiring
	productH := producthandler.New(productuc.New(productStore))

	// Checkout wiring
	initiateUC := checkoutuc.NewInitiate(productStore, transactionStore, customerStore, deliveryStore, log)
	processUC := checkoutuc.NewProcess(transactionStore, customerStore, deliveryStore, productStore, gateway, log)
	statusUC := checkoutuc.NewStatus(transactionStore, log)
	checkoutH := checkouthandler.New(initiateUC, processUC, statusUC, m)

	// Webhook wiring
	webhookUC := webhookuc.New(transactionStore, productStore, log)
	webhookH := webhookhandler.New(webhookUC, m, log)
	signature := middleware.NewWompiSignature(cfg.WompiEventsKey, log)

	app.Get("/products", productH.List)

	app.Post("/checkout/initiate", checkoutH.Initiate)
	app.Post("/checkout/:transactionId/process", checkoutH.Process)
	app.Get("/checkout/:transactionId/status", checkoutH.Status)

	app.Post("/webhooks/wompi", signature.Verify(), webhookH.HandleWompi)
}
