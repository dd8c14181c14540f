package moderator

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/shubhranshu-pandey/Lost-and-Found/model"
	cs "github.com/shubhranshu-pandey/Lost-and-Found/service/claim"
	is "github.com/shubhranshu-pandey/Lost-and-Found/service/item"
	ss "github.com/shubhranshu-pandey/Lost-and-Found/service/stats"
)

type Controller struct {
	Items  is.Service
	Claims cs.Service
	Stats  ss.Service
	V      *validator.Validate
	Log    *slog.Logger
}

// GET /api/moderator/pending
func (h *Controller) PendingItems(c echo.Context) error {
	items, err := h.Items.ListPending(c.Request().Context())
	if err != nil {
		h.Log.Error("pending items", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	if items == nil {
		items = []is.Item{}
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/moderator/claims
func (h *Controller) PendingClaims(c echo.Context) error {
	claims, err := h.Claims.ListPending(c.Request().Context())
	if err != nil {
		h.Log.Error("pending claims", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	if claims == nil {
		claims = []model.PendingClaim{}
	}
	return c.JSON(http.StatusOK, claims)
}

// PATCH /api/moderator/claims/:claimId
func (h *Controller) ResolveClaim(c echo.Context) error {
	var req ResolveClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid action. Must be approve or reject"})
	}

	if err := h.Claims.Resolve(c.Request().Context(), c.Param("claimId"), req.Action); err != nil {
		switch cs.Code(err) {
		case cs.ErrBadAction:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid action. Must be approve or reject"})
		case cs.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Claim not found"})
		case cs.ErrAlreadyProcessed:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Claim has already been processed"})
		default:
			h.Log.Error("claim resolve", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	if req.Action == "approve" {
		return c.JSON(http.StatusOK, echo.Map{"message": "Claim approved successfully"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Claim rejected successfully"})
}

// GET /api/moderator/stats
func (h *Controller) DashboardStats(c echo.Context) error {
	stats, err := h.Stats.Compute(c.Request().Context())
	if err != nil {
		h.Log.Error("stats", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, stats)
}
