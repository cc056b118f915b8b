package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sanjab/internal/models"
	"sanjab/internal/repositories"
	"sanjab/internal/utils"
)

type BranchHandler struct {
	branches repositories.BranchRepository
}

func NewBranchHandler(branches repositories.BranchRepository) *BranchHandler {
	return &BranchHandler{branches: branches}
}

// extractMerchantClaims is a helper to reduce duplication across handlers.
func extractMerchantClaims(c *fiber.Ctx) (*models.MerchantClaims, error) {
	claims, ok := c.Locals("claims").(*models.MerchantClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

func (h *BranchHandler) ListBranches(c *fiber.Ctx) error {
	branches, err := h.branches.GetBranches(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to load branches")
	}
	return utils.Success(c, fiber.Map{"branches": branches})
}

// LinesDropdown returns the billable services offered at a branch for
// the selection screen.
func (h *BranchHandler) LinesDropdown(c *fiber.Ctx) error {
	branchID, err := c.ParamsInt("branchId")
	if err != nil || branchID <= 0 {
		return utils.BadRequest(c, "invalid branch id")
	}

	lines, err := h.branches.GetLinesDropdown(c.Context(), uint(branchID))
	if err != nil {
		return utils.InternalError(c, "Failed to load service lines")
	}
	return utils.Success(c, fiber.Map{"lines": lines})
}
