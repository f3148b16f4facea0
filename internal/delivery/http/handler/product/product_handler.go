package product

import (
	"github.com/gofiber/fiber/v2"

	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
)

type Handler struct {
	uc *productuc.Usecase
}

func New(uc *productuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(out)
}
