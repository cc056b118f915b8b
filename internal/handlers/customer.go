package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sanjab/internal/repositories"
	"sanjab/internal/services/money"
	"sanjab/internal/utils"
)

type CustomerHandler struct {
	customers repositories.CustomerRepository
}

func NewCustomerHandler(customers repositories.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// GetCredit looks up a customer's credit balance by card number at the
// start of a transaction. The returned snapshot is what the allocator
// will run against.
func (h *CustomerHandler) GetCredit(c *fiber.Ctx) error {
	cardNumber := money.Normalize(c.Query("cardNumber"))
	branchID := c.QueryInt("branchId")
	if cardNumber == "" || branchID <= 0 {
		return utils.BadRequest(c, "cardNumber and branchId are required")
	}

	customer, err := h.customers.GetByCard(c.Context(), cardNumber, uint(branchID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "customer not found")
		}
		return utils.InternalError(c, "Failed to load customer")
	}

	return utils.Success(c, fiber.Map{
		"fullName": customer.FullName,
		"credit":   money.Format(customer.Credit),
	})
}
