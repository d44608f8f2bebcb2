package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/ports/input"
)

func (s *Server) listEvents(c *gin.Context) {
	filter, ok := s.eventFilter(c)
	if !ok {
		return
	}
	page, err := s.events.ListEvents(c.Request.Context(), filter)
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventList(page))
}

func (s *Server) adminListEvents(c *gin.Context) {
	filter, ok := s.eventFilter(c)
	if !ok {
		return
	}
	page, err := s.events.ListEventsForAdmin(c.Request.Context(), principalFrom(c), filter)
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventList(page))
}

func (s *Server) createEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	event, err := s.events.CreateEvent(c.Request.Context(), principalFrom(c), req.toInput())
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": toEventResponse(event)})
}

func (s *Server) getEvent(c *gin.Context) {
	event, err := s.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": toEventResponse(event)})
}

func (s *Server) updateEvent(c *gin.Context) {
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	event, err := s.events.UpdateEvent(c.Request.Context(), principalFrom(c), c.Param("id"), req.toInput())
	if err != nil {
		s.errs.write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": toEventResponse(event)})
}

func (s *Server) deleteEvent(c *gin.Context) {
	if err := s.events.DeleteEvent(c.Request.Context(), principalFrom(c), c.Param("id")); err != nil {
		s.errs.write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) eventsByDay(c *gin.Context) {
	groups, err := s.events.GetEventsByDay(c.Request.Context())
	if err != nil {
		s.errs.write(c, err)
		return
	}
	days := make([]dayGroupResponse, len(groups))
	for i, g := range groups {
		days[i] = dayGroupResponse{Date: g.Date.String(), Events: toEventResponses(g.Events)}
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

func (s *Server) checkConflict(c *gin.Context) {
	var req conflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	res, err := s.events.CheckConflict(c.Request.Context(), principalFrom(c), input.ConflictCheckInput{
		OwnerID:        req.OwnerID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ExcludeEventID: req.ExcludeEventID,
	})
	if err != nil {
		s.errs.write(c, err)
		return
	}
	resp := conflictCheckResponse{OK: res.OK}
	if res.Conflicting != nil {
		resp.ConflictingEvent = newConflictSlot(res.Conflicting.Slot())
	}
	c.JSON(http.StatusOK, resp)
}

// eventFilter reads category, status, date, page and limit from the query.
func (s *Server) eventFilter(c *gin.Context) (entities.EventFilter, bool) {
	filter := entities.EventFilter{
		Category: c.Query("category"),
		Status:   entities.EventStatus(c.Query("status")),
	}
	if raw := c.Query("date"); raw != "" {
		d, err := schedule.ParseDate(raw)
		if err != nil {
			s.errs.write(c, err)
			return filter, false
		}
		filter.Date = &d
	}
	var ok bool
	if filter.Page, ok = queryInt(c, "page"); !ok {
		return filter, false
	}
	if filter.Limit, ok = queryInt(c, "limit"); !ok {
		return filter, false
	}
	return filter, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(c, http.StatusBadRequest, codeInvalidQuery, name+" must be a positive integer")
		return 0, false
	}
	return n, true
}

func toEventList(p *entities.EventPage) eventListResponse {
	return eventListResponse{
		Events:     toEventResponses(p.Events),
		Pagination: paginationResponse{Page: p.Page, Limit: p.Limit, Total: p.Total, Pages: p.Pages},
	}
}
