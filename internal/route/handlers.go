package route

import (
	"errors"
	"strconv"

	"backend-pathpal/internal/poi"

	"github.com/gofiber/fiber/v2"
)

const defaultOptionCount = 3

// Option pairs a candidate route with its resolved stops and displayed
// estimate.
type Option struct {
	Route   Route     `json:"route"`
	Stops   []poi.POI `json:"stops"`
	Metrics Metrics   `json:"metrics"`
}

func toOption(r Route) Option {
	return Option{
		Route:   r,
		Stops:   r.Resolve(),
		Metrics: CalculateMetrics(r),
	}
}

func RegisterRoutes(r fiber.Router, svc *Service, gen *Generator, authMiddleware fiber.Handler) {
	r.Get("/options", func(c *fiber.Ctx) error {
		mode := poi.Mode(c.Query("mode"))
		if !mode.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "mode must be walk or wheels")
		}
		count, _ := strconv.Atoi(c.Query("count"))
		if count <= 0 {
			count = defaultOptionCount
		}

		options := []Option{}
		for _, picked := range gen.SampleCurated(mode, count) {
			options = append(options, toOption(picked))
		}
		return c.JSON(options)
	})

	r.Get("/nearest", func(c *fiber.Ctx) error {
		mode := poi.Mode(c.Query("mode"))
		if !mode.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "mode must be walk or wheels")
		}
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			return fiber.NewError(fiber.StatusBadRequest, "lat and lng required")
		}
		return c.JSON(toOption(NearestRoute(mode, lat, lng)))
	})

	r.Get("/shuffled", func(c *fiber.Ctx) error {
		mode := poi.Mode(c.Query("mode"))
		if !mode.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "mode must be walk or wheels")
		}
		return c.JSON(toOption(gen.ShuffledRoute(mode)))
	})

	r.Post("/metrics", func(c *fiber.Ctx) error {
		var req Route
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !req.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "route must have a valid mode and in-range stops")
		}
		return c.JSON(CalculateMetrics(req))
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Route
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.CreatedBy, _ = c.Locals("user_id").(string)
		if req.Name == "" {
			req.Name = "Untitled Path"
		}
		if !req.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "route must have a valid mode and in-range stops")
		}
		created, err := svc.CreateRoute(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		routes, err := svc.ListRoutes(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if routes == nil {
			routes = []Route{}
		}
		return c.JSON(routes)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		rt, err := svc.GetRoute(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "route not found")
		}
		return c.JSON(toOption(rt))
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if err := svc.DeleteRoute(c.Context(), c.Params("id"), userID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "route not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
