package discord

import (
	"eventplanner/internal/clock"
	"eventplanner/internal/ports/input"
	"eventplanner/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	eventUseCase input.EventUseCase
	translator   output.T
	clock        clock.Clock
}

func NewHandler(eventUseCase input.EventUseCase, translator output.T, clk clock.Clock) *Handler {
	return &Handler{
		eventUseCase: eventUseCase,
		translator:   translator,
		clock:        clk,
	}
}
