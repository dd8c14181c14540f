package claim

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	cs "github.com/shubhranshu-pandey/Lost-and-Found/service/claim"
)

type Controller struct {
	Svc cs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /api/items/:id/claim
func (h *Controller) Create(c echo.Context) error {
	var req ClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Claimant ID and name are required"})
	}

	claimID, err := h.Svc.Request(c.Request().Context(), c.Param("id"), req.ClaimantID, req.ClaimantName)
	if err != nil {
		switch cs.Code(err) {
		case cs.ErrMissingFields:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Claimant ID and name are required"})
		case cs.ErrNotAvailable:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Item not found or not available for claiming"})
		case cs.ErrPendingExists:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "There is already a pending claim for this item"})
		default:
			h.Log.Error("claim request", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Claim request submitted successfully! A moderator will review your request.",
		"claimId": claimID,
	})
}
