package session

import (
	"errors"

	"backend-pathpal/internal/poi"
	"backend-pathpal/internal/route"

	"github.com/gofiber/fiber/v2"
)

func statusForError(err error) *fiber.Error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrBadState):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
}

func RegisterRoutes(r fiber.Router, mgr *Manager, routes *route.Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		return c.Status(fiber.StatusCreated).JSON(mgr.Start(userID))
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		s, err := mgr.Get(c.Params("id"))
		if err != nil {
			return statusForError(err)
		}
		return c.JSON(s)
	})

	r.Post("/:id/mode", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Mode string `json:"mode"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		s, err := mgr.ChooseMode(c.Params("id"), poi.Mode(body.Mode))
		if err != nil {
			return statusForError(err)
		}
		return c.JSON(s)
	})

	r.Post("/:id/route", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			CuratedID string       `json:"curated_id"`
			RouteID   string       `json:"route_id"`
			Route     *route.Route `json:"route"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var chosen route.Route
		switch {
		case body.CuratedID != "":
			r, ok := route.CuratedByID(body.CuratedID)
			if !ok {
				return fiber.NewError(fiber.StatusNotFound, "curated route not found")
			}
			chosen = r
		case body.RouteID != "":
			r, err := routes.GetRoute(c.Context(), body.RouteID)
			if err != nil {
				return fiber.NewError(fiber.StatusNotFound, "route not found")
			}
			chosen = r
		case body.Route != nil:
			chosen = *body.Route
		default:
			return fiber.NewError(fiber.StatusBadRequest, "curated_id, route_id, or route required")
		}

		s, err := mgr.StartRoute(c.Params("id"), chosen)
		if err != nil {
			return statusForError(err)
		}
		return c.JSON(s)
	})

	r.Post("/:id/checkin", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			POI string `json:"poi"`
		}
		if err := c.BodyParser(&body); err != nil || body.POI == "" {
			return fiber.NewError(fiber.StatusBadRequest, "poi required")
		}
		s, err := mgr.CheckIn(c.Context(), c.Params("id"), body.POI)
		if err != nil {
			return statusForError(err)
		}
		return c.JSON(s)
	})

	r.Post("/:id/reset", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			ToModeSelection bool `json:"to_mode_selection"`
		}
		_ = c.BodyParser(&body)
		s, err := mgr.Reset(c.Params("id"), body.ToModeSelection)
		if err != nil {
			return statusForError(err)
		}
		return c.JSON(s)
	})
}
