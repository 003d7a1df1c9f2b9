package location

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Timestamp int64   `json:"timestamp"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.Latitude < -90 || body.Latitude > 90 || body.Longitude < -180 || body.Longitude > 180 {
			return fiber.NewError(fiber.StatusBadRequest, "coordinates out of range")
		}

		userID, _ := c.Locals("user_id").(string)
		loc := Location{
			UserID:    userID,
			Latitude:  body.Latitude,
			Longitude: body.Longitude,
			Timestamp: body.Timestamp,
		}
		if err := svc.SaveLocation(c.Context(), loc); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"success": true})
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		loc, err := svc.GetLocation(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "no location saved")
		}
		return c.JSON(loc)
	})
}
