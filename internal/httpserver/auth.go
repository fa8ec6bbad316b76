package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ai_translator/internal/events"
	"github.com/Skotchmaster/ai_translator/internal/logging"
	"github.com/Skotchmaster/ai_translator/internal/models"
	"github.com/Skotchmaster/ai_translator/internal/repo"
	"github.com/Skotchmaster/ai_translator/internal/secret"
	"github.com/Skotchmaster/ai_translator/internal/service"
)

const (
	msgMissingLoginFields = "Missing username or password_hash in request body."
	msgInvalidLogin       = "Invalid username or password."
	msgConfigError        = "Internal configuration error. Cannot process login."
	msgUnexpectedError    = "An unexpected server error occurred."
	msgLoginOK            = "Login successful."

	msgMissingBody           = "Request body is missing."
	msgInvalidJSON           = "Invalid JSON format in request body."
	msgMissingRegisterFields = "Missing required fields: username, password_hash, and email are mandatory."
	msgInvalidEmail          = "Invalid email address format."
	msgRegisterError         = "Internal server error during user creation."
)

type AuthHandler struct {
	Svc       *service.AuthService
	Repo      repo.UserRepo
	Producer  *events.Producer
	UserTable string
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Username     string `json:"username"`
		PasswordHash string `json:"password_hash"`
	}

	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		l.Warn("login rejected", "status", 400, "error", err)
		return respondJSON(c, http.StatusBadRequest, corsHeaders, echo.Map{
			"message": msgMissingLoginFields,
		})
	}
	if req.Username == "" || req.PasswordHash == "" {
		l.Warn("login rejected", "status", 400, "reason", "missing fields")
		return respondJSON(c, http.StatusBadRequest, corsHeaders, echo.Map{
			"message": msgMissingLoginFields,
		})
	}

	signed, err := h.Svc.Login(ctx, req.Username, req.PasswordHash)
	if err != nil {
		var confErr *secret.ConfigurationError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// Identical response for unknown user and wrong credential.
			return respondJSON(c, http.StatusUnauthorized, corsHeaders, echo.Map{
				"message": msgInvalidLogin,
			})
		case errors.As(err, &confErr):
			l.Error("login failed", "status", 500, "reason", "missing signing secret", "error", err)
			return respondJSON(c, http.StatusInternalServerError, minimalHeaders, echo.Map{
				"message": msgConfigError,
			})
		default:
			l.Error("login failed", "status", 500, "error", err)
			return respondJSON(c, http.StatusInternalServerError, corsHeaders, echo.Map{
				"message": msgUnexpectedError,
			})
		}
	}

	l.Info("login successful", "username", req.Username)
	return respondJSON(c, http.StatusOK, corsHeaders, echo.Map{
		"message": msgLoginOK,
		"token":   signed,
	})
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Username     string `json:"username"`
		PasswordHash string `json:"password_hash"`
		Email        string `json:"email"`
	}

	body := c.Request().Body
	if body == nil || c.Request().ContentLength == 0 {
		l.Warn("register rejected", "status", 400, "reason", "empty body")
		return respondJSON(c, http.StatusBadRequest, noHeaders, echo.Map{
			"message": msgMissingBody,
		})
	}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		l.Warn("register rejected", "status", 400, "error", err)
		return respondJSON(c, http.StatusBadRequest, noHeaders, echo.Map{
			"message": msgInvalidJSON,
		})
	}
	if req.Username == "" || req.PasswordHash == "" || req.Email == "" {
		l.Warn("register rejected", "status", 400, "reason", "missing fields")
		return respondJSON(c, http.StatusBadRequest, noHeaders, echo.Map{
			"message": msgMissingRegisterFields,
		})
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		l.Warn("register rejected", "status", 400, "reason", "invalid email")
		return respondJSON(c, http.StatusBadRequest, noHeaders, echo.Map{
			"message": msgInvalidEmail,
		})
	}

	user := models.User{
		ID:           "user-" + uuid.NewString(),
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		Email:        req.Email,
	}

	if err := h.Repo.Insert(ctx, &user); err != nil {
		l.Error("register failed", "status", 500, "error", err)
		return respondJSON(c, http.StatusInternalServerError, noHeaders, echo.Map{
			"message": msgRegisterError,
		})
	}

	event := map[string]interface{}{
		"type":     "user_registered",
		"username": user.Username,
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := h.Producer.PublishEvent(pubCtx, user.Username, event); err != nil {
		l.Error("event publish error", "type", "user_registered", "error", err)
	}

	l.Info("user registered", "username", user.Username)
	return respondJSON(c, http.StatusCreated, noHeaders, echo.Map{
		"message": fmt.Sprintf("User %s successfully registered and inserted into %s.", user.Username, h.UserTable),
		"user_info": echo.Map{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
