package webhook

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/RobertCastro/e-commerce-payment-service/internal/metrics"
	webhookuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/webhook"
)

type Handler struct {
	uc      *webhookuc.Usecase
	metrics *metrics.Metrics
	log     *zap.Logger
}

func New(uc *webhookuc.Usecase, m *metrics.Metrics, log *zap.Logger) *Handler {
	return &Handler{uc: uc, metrics: m, log: log}
}

// HandleWompi acknowledges the provider event. Failures never leak internal
// details back to the provider beyond a generic rejection.
func (h *Handler) HandleWompi(c *fiber.Ctx) error {
	var ev webhookuc.Event
	if err := c.BodyParser(&ev); err != nil {
		h.metrics.WebhookEvents.WithLabelValues("malformed").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	if err := h.uc.Execute(c.Context(), ev); err != nil {
		h.log.Error("webhook handling failed", zap.Error(err))
		h.metrics.WebhookEvents.WithLabelValues("error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	h.metrics.WebhookEvents.WithLabelValues(ev.Data.Transaction.Status).Inc()
	return c.JSON(fiber.Map{"received": true})
}
