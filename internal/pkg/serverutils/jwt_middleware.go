package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func parseToken(authHeader string) (jwt.MapClaims, bool) {
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return nil, false
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, ok := parseToken(ctx.Get("Authorization"))
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid token"))
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}

// OptionalJwtMiddleware attaches user_id when a valid token is present but
// never rejects. Workflow sessions work anonymously; identity only matters
// for persistence.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	if claims, ok := parseToken(ctx.Get("Authorization")); ok {
		ctx.Locals("user_id", claims["user_id"])
	}
	return ctx.Next()
}
