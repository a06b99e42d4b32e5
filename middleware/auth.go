package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/meinhoongagan/pharmacy-portal/models"
	"github.com/meinhoongagan/pharmacy-portal/session"
	"github.com/meinhoongagan/pharmacy-portal/utils"
)

const sessionKey = "session"

// Protected verifies the access token and loads its session into Locals.
func Protected(manager *session.Manager, secret []byte, log *zap.Logger) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   secret,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c, "Invalid token")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid token claims")
			}

			sid, err := session.SessionID(claims)
			if err != nil {
				return unauthorized(c, "Invalid session in token")
			}

			sess, err := manager.Authenticate(c.UserContext(), sid)
			if err != nil {
				log.Debug("session rejected", zap.String("session_id", sid), zap.Error(err))
				return unauthorized(c, "Session expired")
			}

			c.Locals(sessionKey, sess)
			return c.Next()
		},
	})
}

// CurrentSession returns the session set by Protected.
func CurrentSession(c *fiber.Ctx) *models.Session {
	sess, _ := c.Locals(sessionKey).(*models.Session)
	return sess
}

// RequireKind rejects sessions whose account kind is not listed.
func RequireKind(kinds ...models.AccountKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if sess == nil {
			return unauthorized(c, "Not signed in")
		}
		for _, k := range kinds {
			if sess.Kind == k {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "This account type cannot perform this action",
		})
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
		Message: "Unauthorized",
		Error:   msg,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return unauthorized(c, "Invalid or expired token")
}
