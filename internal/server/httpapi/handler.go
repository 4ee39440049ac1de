package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func (s *HTTPServer) registerHandler(c *gin.Context) {

	ctx := c.Request.Context()
	s.logger.Info(ctx, "Registration request")

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUsernameTaken) {
			respondError(c, http.StatusBadRequest, common.ErrorUsernameTaken.Error())
			return
		}
		s.logger.Error(ctx, "registration failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName)
	c.Status(http.StatusCreated)
}

func (s *HTTPServer) loginHandler(c *gin.Context) {

	ctx := c.Request.Context()
	s.logger.Info(ctx, "Login request")

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			// One uniform signal for unknown user and wrong password.
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
