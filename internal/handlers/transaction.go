package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sanjab/internal/repositories"
	"sanjab/internal/services/allocation"
	"sanjab/internal/services/checkout"
	"sanjab/internal/services/money"
	"sanjab/internal/services/split"
	"sanjab/internal/utils"
)

type TransactionHandler struct {
	checkoutService *checkout.Service
	customers       repositories.CustomerRepository
	merchants       repositories.MerchantRepository
}

func NewTransactionHandler(checkoutService *checkout.Service, customers repositories.CustomerRepository, merchants repositories.MerchantRepository) *TransactionHandler {
	return &TransactionHandler{
		checkoutService: checkoutService,
		customers:       customers,
		merchants:       merchants,
	}
}

type transactionInput struct {
	BranchID     uint   `json:"branchId"`
	CardNumber   string `json:"cardNumber"`
	CreditOption string `json:"creditOption"`
	Items        []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Amount string `json:"amount"`
	} `json:"items"`
}

// Create runs the checkout pipeline for one POS charge.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	claims, err := extractMerchantClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input transactionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.BranchID == 0 || input.CardNumber == "" || len(input.Items) == 0 {
		return utils.BadRequest(c, "branchId, cardNumber and items are required")
	}

	option := split.CreditOption(input.CreditOption)
	if option != split.OptionUseCredit && option != split.OptionSaveForLater {
		return utils.BadRequest(c, "creditOption must be useCredit or saveForLater")
	}

	merchant, err := h.merchants.GetByID(claims.MerchantID)
	if err != nil {
		return utils.InternalError(c, "Failed to load merchant")
	}

	cardNumber := money.Normalize(input.CardNumber)
	customer, err := h.customers.GetByCard(c.Context(), cardNumber, input.BranchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "customer not found")
		}
		return utils.InternalError(c, "Failed to load customer")
	}

	items := make([]allocation.LineItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, allocation.LineItem{ID: it.ID, Title: it.Title, Amount: it.Amount})
	}

	receipt, err := h.checkoutService.Checkout(c.Context(), checkout.Request{
		MerchantID:    claims.MerchantID,
		BranchID:      input.BranchID,
		CardNumber:    cardNumber,
		Items:         items,
		Credit:        customer.Credit,
		CreditOption:  option,
		MerchantSheba: merchant.SettlementSheba,
	})
	if err != nil {
		switch {
		case errors.Is(err, allocation.ErrInvalidAmount),
			errors.Is(err, checkout.ErrInvalidLineID),
			errors.Is(err, checkout.ErrNoPricedItems):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, split.ErrInvalidDestination):
			// money must not move; surfaced as a blocking error
			return utils.UnprocessableEntity(c, err.Error())
		case errors.Is(err, checkout.ErrPaymentDeclined):
			return utils.PaymentRequired(c, err.Error())
		default:
			return utils.InternalError(c, "Transaction failed")
		}
	}

	tx := receipt.Transaction
	return utils.Success(c, fiber.Map{
		"reference":     tx.Reference,
		"status":        tx.Status,
		"totalAmount":   money.Format(tx.TotalAmount),
		"creditUsed":    money.Format(tx.CreditUsed),
		"payableAmount": money.Format(tx.PayableAmount),
		"lines":         tx.Lines,
	})
}
