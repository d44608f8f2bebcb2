package http

import (
	"time"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/ports/input"
)

type ownerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type eventResponse struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Date         string        `json:"date"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	Location     string        `json:"location"`
	Category     string        `json:"category"`
	Status       string        `json:"status"`
	MaxAttendees *int          `json:"maxAttendees,omitempty"`
	Price        *float64      `json:"price,omitempty"`
	ContactEmail string        `json:"contactEmail,omitempty"`
	ContactPhone string        `json:"contactPhone,omitempty"`
	Requirements string        `json:"requirements,omitempty"`
	Image        string        `json:"image,omitempty"`
	CreatedBy    ownerResponse `json:"createdBy"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func toEventResponse(e *entities.Event) eventResponse {
	return eventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Date:         e.Date.String(),
		StartTime:    e.StartTime.String(),
		EndTime:      e.EndTime.String(),
		Location:     e.Location,
		Category:     e.Category,
		Status:       string(e.Status),
		MaxAttendees: e.MaxAttendees,
		Price:        e.Price,
		ContactEmail: e.ContactEmail,
		ContactPhone: e.ContactPhone,
		Requirements: e.Requirements,
		Image:        e.Image,
		CreatedBy:    ownerResponse{ID: e.OwnerID, Name: e.OwnerName, Email: e.OwnerEmail},
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toEventResponses(events []entities.Event) []eventResponse {
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i])
	}
	return out
}

type paginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type eventListResponse struct {
	Events     []eventResponse    `json:"events"`
	Pagination paginationResponse `json:"pagination"`
}

type dayGroupResponse struct {
	Date   string          `json:"date"`
	Events []eventResponse `json:"events"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *entities.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type userListResponse struct {
	Users      []userResponse     `json:"users"`
	Pagination paginationResponse `json:"pagination"`
}

type createEventRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Location     string   `json:"location"`
	Category     string   `json:"category"`
	MaxAttendees *int     `json:"maxAttendees"`
	Price        *float64 `json:"price"`
	ContactEmail string   `json:"contactEmail"`
	ContactPhone string   `json:"contactPhone"`
	Requirements string   `json:"requirements"`
	Image        string   `json:"image"`
}

func (r createEventRequest) toInput() input.CreateEventInput {
	return input.CreateEventInput{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Location:     r.Location,
		Category:     r.Category,
		MaxAttendees: r.MaxAttendees,
		Price:        r.Price,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Requirements: r.Requirements,
		Image:        r.Image,
	}
}

// updateEventRequest keeps absent fields nil so that only present ones apply.
type updateEventRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Date         *string  `json:"date"`
	StartTime    *string  `json:"startTime"`
	EndTime      *string  `json:"endTime"`
	Location     *string  `json:"location"`
	Category     *string  `json:"category"`
	MaxAttendees *int     `json:"maxAttendees"`
	Price        *float64 `json:"price"`
	ContactEmail *string  `json:"contactEmail"`
	ContactPhone *string  `json:"contactPhone"`
	Requirements *string  `json:"requirements"`
	Image        *string  `json:"image"`
	Status       *string  `json:"status"`
}

func (r updateEventRequest) toInput() input.UpdateEventInput {
	return input.UpdateEventInput{
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Location:     r.Location,
		Category:     r.Category,
		MaxAttendees: r.MaxAttendees,
		Price:        r.Price,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Requirements: r.Requirements,
		Image:        r.Image,
		Status:       r.Status,
	}
}

type conflictCheckRequest struct {
	OwnerID        string `json:"ownerId"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	ExcludeEventID string `json:"excludeEventId"`
}

type conflictCheckResponse struct {
	OK               bool          `json:"ok"`
	ConflictingEvent *conflictSlot `json:"conflictingEvent,omitempty"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Role    *string `json:"role"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}
