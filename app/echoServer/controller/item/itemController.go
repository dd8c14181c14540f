package item

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	is "github.com/shubhranshu-pandey/Lost-and-Found/service/item"
)

type Controller struct {
	Svc is.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /api/items?status=&type=
func (h *Controller) List(c echo.Context) error {
	items, err := h.Svc.List(c.Request().Context(), c.QueryParam("status"), c.QueryParam("type"))
	if err != nil {
		h.Log.Error("item list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	if items == nil {
		items = []is.Item{}
	}
	return c.JSON(http.StatusOK, items)
}

// GET /api/items/:id
func (h *Controller) Detail(c echo.Context) error {
	item, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if is.Code(err) == is.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		}
		h.Log.Error("item detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, item)
}

// POST /api/items
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Type, title, and description are required"})
	}

	item, err := h.Svc.Submit(c.Request().Context(), is.SubmitInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Contact:     req.Contact,
	})
	if err != nil {
		switch is.Code(err) {
		case is.ErrMissingFields:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Type, title, and description are required"})
		case is.ErrBadType:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Type must be lost or found"})
		default:
			h.Log.Error("item submit", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, item)
}

// PATCH /api/items/:id/status
func (h *Controller) UpdateStatus(c echo.Context) error {
	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status"})
	}

	if err := h.Svc.SetStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		switch is.Code(err) {
		case is.ErrBadStatus:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status"})
		case is.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item not found"})
		default:
			h.Log.Error("item status update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Item status updated to %s", req.Status)})
}
