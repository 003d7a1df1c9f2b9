package social

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/follow", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.UserID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		followerID, _ := c.Locals("user_id").(string)
		if err := svc.Follow(c.Context(), followerID, body.UserID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/unfollow", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.UserID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		followerID, _ := c.Locals("user_id").(string)
		if err := svc.Unfollow(c.Context(), followerID, body.UserID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/share", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			RouteID string `json:"route_id"`
			Note    string `json:"note"`
		}
		if err := c.BodyParser(&body); err != nil || body.RouteID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "route_id required")
		}
		userID, _ := c.Locals("user_id").(string)
		shared, err := svc.ShareRoute(c.Context(), userID, body.RouteID, body.Note)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(shared)
	})

	r.Get("/feed", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		feed, err := svc.Feed(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if feed == nil {
			feed = []FeedEntry{}
		}
		return c.JSON(feed)
	})
}
