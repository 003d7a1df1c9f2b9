package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalUserID is the fiber locals key under which the middleware stores
// the authenticated user's id.
const LocalUserID = "user_id"

var parseMiddlewareClaimsFn = jwt.ParseWithClaims

// JWTMiddleware rejects requests without a valid bearer token and exposes
// the token's user id to downstream handlers via locals.
func JWTMiddleware(secret string) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		raw, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		parsed, err := parseMiddlewareClaimsFn(raw, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		claims, ok := parsed.Claims.(*Claims)
		if !ok || !parsed.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "token invalid")
		}

		c.Locals(LocalUserID, claims.UserID)
		return c.Next()
	}
}
