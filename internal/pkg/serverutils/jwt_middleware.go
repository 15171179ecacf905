package serverutils

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userIdKey = "user_id"

func unauthorized(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, message))
}

// JwtMiddleware guards a route group. The token is verified here and
// the caller's id is parsed once, so handlers get a uuid.UUID via
// CurrentUserId instead of re-reading claims.
func JwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr, ok := strings.CutPrefix(ctx.Get(fiber.HeaderAuthorization), "Bearer ")
	if !ok {
		return unauthorized(ctx, "Missing token")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return unauthorized(ctx, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthorized(ctx, "Invalid token")
	}

	sub, _ := claims[userIdKey].(string)
	userId, err := uuid.Parse(sub)
	if err != nil {
		return unauthorized(ctx, "Invalid token")
	}

	ctx.Locals(userIdKey, userId)
	return ctx.Next()
}

// CurrentUserId reads the caller identity set by JwtMiddleware.
func CurrentUserId(ctx *fiber.Ctx) uuid.UUID {
	userId, _ := ctx.Locals(userIdKey).(uuid.UUID)
	return userId
}
