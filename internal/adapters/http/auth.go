package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/ports/input"
)

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	res, err := s.users.Register(c.Request.Context(), input.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{User: toUserResponse(res.User), Token: res.Token})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	res, err := s.users.Login(c.Request.Context(), input.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{User: toUserResponse(res.User), Token: res.Token})
}

func (s *Server) logout(c *gin.Context) {
	if err := s.users.Logout(c.Request.Context(), bearerToken(c.Request)); err != nil {
		s.errs.write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) me(c *gin.Context) {
	user, err := s.users.Me(c.Request.Context(), principalFrom(c))
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (s *Server) countUsers(c *gin.Context) {
	n, err := s.users.CountUsers(c.Request.Context())
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}
