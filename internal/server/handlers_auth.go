package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/models"
)

// --- JWT helpers ---

// signJWT creates a signed HMAC-SHA256 JWT for the given user.
func signJWT(user *models.User, config *common.AuthConfig) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"email":    user.Email,
		"iss":      "finpulse-server",
		"iat":      now.Unix(),
		"exp":      now.Add(config.GetTokenExpiry()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// validateJWT parses and validates a JWT token string using the given secret.
func validateJWT(tokenString string, secret []byte) (*jwt.Token, jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return token, claims, nil
}

// --- Auth handlers ---

// handleSignup handles POST /api/auth/signup.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		WriteFailure(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		WriteFailure(w, http.StatusBadRequest, "failed to hash password")
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
	}

	id, err := s.users.Insert(r.Context(), user)
	if err != nil {
		s.logger.Warn().Err(err).Str("username", req.Username).Msg("Signup failed")
		WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	tokenString, err := signJWT(user, &s.config.Auth)
	if err != nil {
		WriteFailure(w, http.StatusBadRequest, "failed to sign token")
		return
	}

	s.logger.Info().Str("user_id", id).Str("username", req.Username).Msg("User signed up")

	WriteSuccess(w, map[string]interface{}{
		"token": tokenString,
		"user":  user,
	})
}

// handleLogin handles POST /api/auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := s.users.FindByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		s.logger.Warn().Err(err).Str("username", req.Username).Msg("Login lookup failed")
		WriteFailure(w, http.StatusBadRequest, err.Error())
		return
	}
	if user == nil {
		WriteFailure(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		WriteFailure(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	tokenString, err := signJWT(user, &s.config.Auth)
	if err != nil {
		WriteFailure(w, http.StatusBadRequest, "failed to sign token")
		return
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User logged in")

	WriteSuccess(w, map[string]interface{}{
		"token": tokenString,
		"user":  user,
	})
}
