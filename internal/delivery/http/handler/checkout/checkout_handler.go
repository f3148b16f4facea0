package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/RobertCastro/e-commerce-payment-service/internal/metrics"
	checkoutuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/checkout"
)

type Handler struct {
	initiate *checkoutuc.InitiateUsecase
	process  *checkoutuc.ProcessUsecase
	status   *checkoutuc.StatusUsecase
	metrics  *metrics.Metrics
}

func New(
	initiate *checkoutuc.InitiateUsecase,
	process *checkoutuc.ProcessUsecase,
	status *checkoutuc.StatusUsecase,
	m *metrics.Metrics,
) *Handler {
	return &Handler{initiate: initiate, process: process, status: status, metrics: m}
}

func (h *Handler) Initiate(c *fiber.Ctx) error {
	var in checkoutuc.InitiateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	out, err := h.initiate.Execute(c.Context(), in)
	if err != nil {
		h.metrics.CheckoutsInitiated.WithLabelValues("error").Inc()
		return writeError(c, err)
	}

	h.metrics.CheckoutsInitiated.WithLabelValues("ok").Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) Process(c *fiber.Ctx) error {
	id := c.Params("transactionId")

	var in checkoutuc.ProcessInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	out, err := h.process.Execute(c.Context(), id, in)
	if err != nil {
		h.metrics.PaymentsProcessed.WithLabelValues("error").Inc()
		return writeError(c, err)
	}

	h.metrics.PaymentsProcessed.WithLabelValues(string(out.Status)).Inc()
	return c.JSON(out)
}

func (h *Handler) Status(c *fiber.Ctx) error {
	out, err := h.status.Execute(c.Context(), c.Params("transactionId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func writeError(c *fiber.Ctx, err error) error {
	var cerr *checkoutuc.Error
	if errors.As(err, &cerr) {
		return c.Status(statusFor(cerr.Code)).JSON(fiber.Map{
			"error":     cerr.Message,
			"errorCode": cerr.Code,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func statusFor(code string) int {
	switch code {
	case checkoutuc.CodeTransactionNotFound:
		return fiber.StatusNotFound
	case checkoutuc.CodeValidation,
		checkoutuc.CodeProductNotFound,
		checkoutuc.CodeInsufficientStock,
		checkoutuc.CodeInvalidStatus,
		checkoutuc.CodeGatewayError:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
