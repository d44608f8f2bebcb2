package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/ports/input"
)

func (s *Server) adminListUsers(c *gin.Context) {
	filter := entities.UserFilter{Role: entities.Role(c.Query("role"))}
	var ok bool
	if filter.Page, ok = queryInt(c, "page"); !ok {
		return
	}
	if filter.Limit, ok = queryInt(c, "limit"); !ok {
		return
	}

	page, err := s.users.ListUsers(c.Request.Context(), principalFrom(c), filter)
	if err != nil {
		s.errs.write(c, err)
		return
	}
	users := make([]userResponse, len(page.Users))
	for i := range page.Users {
		users[i] = toUserResponse(&page.Users[i])
	}
	c.JSON(http.StatusOK, userListResponse{
		Users:      users,
		Pagination: paginationResponse{Page: page.Page, Limit: page.Limit, Total: page.Total, Pages: page.Pages},
	})
}

func (s *Server) adminUpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	user, err := s.users.UpdateUser(c.Request.Context(), principalFrom(c), c.Param("id"), input.UpdateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (s *Server) adminDeleteUser(c *gin.Context) {
	if err := s.users.DeleteUser(c.Request.Context(), principalFrom(c), c.Param("id")); err != nil {
		s.errs.write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
