package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/jobnexus/backend/internal/model"
	"github.com/jobnexus/backend/internal/util"
)

const principalKey = "principal"

// AuthMiddleware resolves the session cookie into a request-scoped Principal
// instead of ambient global state.
type AuthMiddleware struct {
	store *session.Store
}

func NewAuthMiddleware(sessionTTL time.Duration) *AuthMiddleware {
	store := session.New(session.Config{
		Expiration:     sessionTTL,
		KeyLookup:      "cookie:jobnexus_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return &AuthMiddleware{store: store}
}

// SignIn binds the user to a fresh session.
func (m *AuthMiddleware) SignIn(c *fiber.Ctx, user *model.User) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set("user_id", user.ID.String())
	sess.Set("role", string(user.Role))
	return sess.Save()
}

func (m *AuthMiddleware) SignOut(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// Required rejects unauthenticated requests with 401 and stores the resolved
// Principal in locals for handlers.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.store.Get(c)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code: fiber.StatusUnauthorized, Message: "authentication required",
			}, err)
		}
		rawID, _ := sess.Get("user_id").(string)
		rawRole, _ := sess.Get("role").(string)
		userID, err := uuid.Parse(rawID)
		role := model.Role(rawRole)
		if rawID == "" || err != nil || !role.Valid() {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code: fiber.StatusUnauthorized, Message: "authentication required",
			})
		}
		c.Locals(principalKey, model.Principal{UserID: userID, Role: role})
		return c.Next()
	}
}

// RequireRole gates a route to the given roles; it must run after Required.
func (m *AuthMiddleware) RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := Principal(c)
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code: fiber.StatusUnauthorized, Message: "authentication required",
			})
		}
		for _, role := range roles {
			if principal.Role == role {
				return c.Next()
			}
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code: fiber.StatusForbidden, Message: "insufficient role",
		})
	}
}

// Principal returns the identity resolved by Required.
func Principal(c *fiber.Ctx) (model.Principal, bool) {
	principal, ok := c.Locals(principalKey).(model.Principal)
	return principal, ok
}
