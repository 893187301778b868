package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/dockpanel/dockpanel/internal/core/ports"
	"github.com/dockpanel/dockpanel/internal/logging"
	"github.com/dockpanel/dockpanel/internal/metrics"
	"github.com/dockpanel/dockpanel/internal/session"
)

// bcryptCost matches what the panel has always stored hashes with.
const bcryptCost = 12

// Input bounds, enforced before any hashing or store call.
const (
	usernameMinLen = 3
	usernameMaxLen = 32
	passwordMinLen = 6
	passwordMaxLen = 128
)

// AuthHandler serves login, registration, and password changes.
type AuthHandler struct {
	users ports.UserStore
	codec *session.Codec
}

// NewAuthHandler wires the credential store and session codec into the
// auth endpoints.
func NewAuthHandler(users ports.UserStore, codec *session.Codec) *AuthHandler {
	return &AuthHandler{users: users, codec: codec}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func validateUsername(username string) error {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return fmt.Errorf("username must be %d-%d characters", usernameMinLen, usernameMaxLen)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		return fmt.Errorf("password must be %d-%d characters", passwordMinLen, passwordMaxLen)
	}
	return nil
}

// setSessionCookie persists the session and attaches it to the response
// with the fixed cookie policy: HttpOnly, SameSite=Lax, whole path space,
// Secure outside development.
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, s session.Session) error {
	value, err := h.codec.Persist(s)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.codec.Secure,
	})
	return nil
}

// Login verifies credentials and establishes a session. Unknown username
// and wrong password deliberately share one message, so responses do not
// confirm which usernames exist.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validateUsername(req.Username); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validatePassword(req.Password); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.users.GetByUsername(req.Username)
	if err != nil {
		if !errors.Is(err, ports.ErrUserNotFound) {
			logging.Get().Error().Err(err).Msg("user lookup failed")
		}
		metrics.IncLoginFailure()
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.IncLoginFailure()
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := h.setSessionCookie(c, session.Session{UserID: user.ID, Username: user.Username}); err != nil {
		logging.Get().Error().Err(err).Msg("failed to persist session")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login error",
		})
	}
	metrics.IncLogin()
	return c.JSON(fiber.Map{"ok": true, "username": user.Username})
}

// Register creates an account and logs it straight in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validateUsername(req.Username); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validatePassword(req.Password); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logging.Get().Error().Err(err).Msg("password hashing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Registration error",
		})
	}

	user, err := h.users.Create(req.Username, string(hash))
	if err != nil {
		if errors.Is(err, ports.ErrUsernameTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Username already taken",
			})
		}
		logging.Get().Error().Err(err).Msg("user creation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Registration error",
		})
	}

	if err := h.setSessionCookie(c, session.Session{UserID: user.ID, Username: user.Username}); err != nil {
		logging.Get().Error().Err(err).Msg("failed to persist session")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Registration error",
		})
	}
	metrics.IncRegistration()
	return c.JSON(fiber.Map{"ok": true, "username": user.Username})
}

// ChangePassword re-hashes and stores a new password for the logged-in
// user.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	sess := h.codec.Load(c.Cookies(session.CookieName))
	if !sess.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validatePassword(req.Password); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logging.Get().Error().Err(err).Msg("password hashing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Update failed",
		})
	}
	if err := h.users.UpdatePassword(sess.UserID, string(hash)); err != nil {
		logging.Get().Error().Err(err).Msg("password update failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Update failed",
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}
