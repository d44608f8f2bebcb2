package application

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"eventplanner/internal/clock"
	"eventplanner/internal/domain"
	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/ports/input"
	"eventplanner/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
	policy    AuthorizationPolicy
	clock     clock.Clock
	validate  *validator.Validate
	logger    *slog.Logger

	notifier output.EventNotifier
	cache    output.DashboardCache
	cacheTTL time.Duration
}

// NewEventService wires the event lifecycle. clk must report time in the
// location used to interpret event dates.
func NewEventService(
	eventRepo output.EventRepository,
	policy AuthorizationPolicy,
	clk clock.Clock,
	logger *slog.Logger,
) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{
		eventRepo: eventRepo,
		policy:    policy,
		clock:     clk,
		validate:  newValidator(),
		logger:    logger,
	}
}

// WithNotifier sets the notifier told about committed changes.
func (s *EventService) WithNotifier(n output.EventNotifier) *EventService {
	s.notifier = n
	return s
}

// WithDashboardCache serves GetEventsByDay from cache for ttl between writes.
func (s *EventService) WithDashboardCache(c output.DashboardCache, ttl time.Duration) *EventService {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

func (s *EventService) CreateEvent(ctx context.Context, actor *entities.Principal, in input.CreateEventInput) (*entities.Event, error) {
	if err := s.policy.CanCreate(actor); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, in); err != nil {
		return nil, err
	}
	date, start, end, err := parseSchedule(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateRange(start, end); err != nil {
		return nil, err
	}
	if err := schedule.CheckNotPast(date, start, s.clock.Now()); err != nil {
		return nil, err
	}

	event := &entities.Event{
		ID:           uuid.NewString(),
		OwnerID:      actor.UserID,
		Title:        in.Title,
		Description:  in.Description,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		Location:     in.Location,
		Category:     in.Category,
		Status:       entities.StatusUpcoming,
		MaxAttendees: in.MaxAttendees,
		Price:        in.Price,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Requirements: in.Requirements,
		Image:        in.Image,
	}

	err = s.eventRepo.WithOwnerDayLock(ctx, event.OwnerID, date, func(ctx context.Context) error {
		if _, err := s.detectConflict(ctx, schedule.Request{
			OwnerID: event.OwnerID,
			Date:    date,
			Start:   start,
			End:     end,
		}); err != nil {
			return err
		}
		return s.eventRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("reload created event: %w", err)
	}
	s.afterWrite(ctx, output.EventCreated, created)
	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context, filter entities.EventFilter) (*entities.EventPage, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, filter.Status)
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &entities.EventPage{
		Events: events,
		Page:   filter.Page,
		Limit:  filter.Limit,
		Total:  total,
		Pages:  pageCount(total, filter.Limit),
	}, nil
}

func (s *EventService) ListEventsForAdmin(ctx context.Context, actor *entities.Principal, filter entities.EventFilter) (*entities.EventPage, error) {
	if err := s.policy.CanAdminister(actor); err != nil {
		return nil, err
	}
	filter.Sort = entities.SortByNewest
	return s.ListEvents(ctx, filter)
}

// maxRescheduleAttempts bounds how often UpdateEvent re-locks when the stored
// date moves between the unlocked read and the locked one.
const maxRescheduleAttempts = 3

var errDateMoved = errors.New("event date changed concurrently")

// UpdateEvent applies the fields present in in. Only those fields are
// written. When date, start or end time is part of the update, the schedule
// is merged with the row as read under the owner/day lock and re-validated.
func (s *EventService) UpdateEvent(ctx context.Context, actor *entities.Principal, id string, in input.UpdateEventInput) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanModify(actor, event); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, in); err != nil {
		return nil, err
	}

	patch, err := toEventPatch(in)
	if err != nil {
		return nil, err
	}
	if !patch.TouchesSchedule() {
		if err := s.eventRepo.Update(ctx, id, patch); err != nil {
			return nil, err
		}
		return s.reloadAfterUpdate(ctx, id)
	}

	target := event.Date
	if patch.Date != nil {
		target = *patch.Date
	}
	for attempt := 1; ; attempt++ {
		moved, err := s.rescheduleLocked(ctx, event.OwnerID, target, id, patch)
		if errors.Is(err, errDateMoved) && attempt < maxRescheduleAttempts {
			target = moved
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	return s.reloadAfterUpdate(ctx, id)
}

// rescheduleLocked re-reads the event under the (owner, date) lock, merges the
// patch into the fresh row, checks for conflicts and writes. If the merged
// date is not the locked one, it returns that date with errDateMoved.
func (s *EventService) rescheduleLocked(ctx context.Context, ownerID string, date schedule.Date, id string, patch entities.EventPatch) (schedule.Date, error) {
	var moved schedule.Date
	err := s.eventRepo.WithOwnerDayLock(ctx, ownerID, date, func(ctx context.Context) error {
		current, err := s.eventRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		merged := *current
		patch.Apply(&merged)
		if merged.Date != date {
			moved = merged.Date
			return errDateMoved
		}
		if _, err := s.detectConflict(ctx, schedule.Request{
			OwnerID:   current.OwnerID,
			Date:      merged.Date,
			Start:     merged.StartTime,
			End:       merged.EndTime,
			ExcludeID: current.ID,
		}); err != nil {
			return err
		}
		patch.Date, patch.StartTime, patch.EndTime = &merged.Date, &merged.StartTime, &merged.EndTime
		return s.eventRepo.Update(ctx, id, patch)
	})
	return moved, err
}

func (s *EventService) DeleteEvent(ctx context.Context, actor *entities.Principal, id string) error {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.CanModify(actor, event); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.afterWrite(ctx, output.EventDeleted, event)
	return nil
}

// GetEventsByDay groups every event by calendar date. Groups are ascending
// and events inside a group are ordered by start time.
func (s *EventService) GetEventsByDay(ctx context.Context) ([]entities.DayGroup, error) {
	if s.cache != nil {
		groups, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("dashboard cache read failed", "error", err)
		} else if ok {
			return groups, nil
		}
	}

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	groups := GroupByDay(events)

	if s.cache != nil {
		if err := s.cache.Set(ctx, groups, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", "error", err)
		}
	}
	return groups, nil
}

// CheckConflict runs conflict detection for a prospective slot without
// writing anything. Only a conflict is reported through the result; malformed
// input is returned as an error.
func (s *EventService) CheckConflict(ctx context.Context, actor *entities.Principal, in input.ConflictCheckInput) (*input.ConflictCheckResult, error) {
	if actor == nil || actor.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	ownerID := in.OwnerID
	if ownerID == "" {
		ownerID = actor.UserID
	}
	if ownerID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	date, start, end, err := parseSchedule(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	conflicting, err := s.detectConflict(ctx, schedule.Request{
		OwnerID:   ownerID,
		Date:      date,
		Start:     start,
		End:       end,
		ExcludeID: in.ExcludeEventID,
	})
	var conflict *schedule.ConflictError
	switch {
	case errors.As(err, &conflict):
		return &input.ConflictCheckResult{OK: false, Conflicting: conflicting}, nil
	case err != nil:
		return nil, err
	}
	return &input.ConflictCheckResult{OK: true}, nil
}

// detectConflict loads the owner's events for the request date and runs the
// validator over them. On conflict the matching stored event is returned along
// with the *schedule.ConflictError.
func (s *EventService) detectConflict(ctx context.Context, req schedule.Request) (*entities.Event, error) {
	existing, err := s.eventRepo.FindByCriteria(ctx, entities.EventCriteria{
		OwnerID:   req.OwnerID,
		Date:      req.Date,
		ExcludeID: req.ExcludeID,
	})
	if err != nil {
		return nil, fmt.Errorf("find same-day events: %w", err)
	}
	pool := make([]schedule.Slot, len(existing))
	for i := range existing {
		pool[i] = existing[i].Slot()
	}

	err = schedule.Check(req, pool)
	var conflict *schedule.ConflictError
	if errors.As(err, &conflict) {
		for i := range existing {
			if existing[i].ID == conflict.Existing.ID {
				return &existing[i], err
			}
		}
	}
	return nil, err
}

func (s *EventService) reloadAfterUpdate(ctx context.Context, id string) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload updated event: %w", err)
	}
	s.afterWrite(ctx, output.EventUpdated, event)
	return event, nil
}

// afterWrite runs once a change is committed; failures here are logged only.
func (s *EventService) afterWrite(ctx context.Context, kind output.EventKind, event *entities.Event) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("dashboard cache invalidation failed", "error", err)
		}
	}
	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, kind, event); err != nil {
			s.logger.Warn("event notification failed", "kind", kind, "event_id", event.ID, "error", err)
		}
	}
}

// GroupByDay buckets events per calendar date, both levels sorted.
func GroupByDay(events []entities.Event) []entities.DayGroup {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b entities.Event) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case b.Date.Before(a.Date):
			return 1
		}
		return cmp.Compare(a.StartTime, b.StartTime)
	})

	groups := make([]entities.DayGroup, 0)
	for _, e := range sorted {
		if n := len(groups); n > 0 && groups[n-1].Date == e.Date {
			groups[n-1].Events = append(groups[n-1].Events, e)
			continue
		}
		groups = append(groups, entities.DayGroup{Date: e.Date, Events: []entities.Event{e}})
	}
	return groups
}

func parseSchedule(dateStr, startStr, endStr string) (schedule.Date, schedule.TimeOfDay, schedule.TimeOfDay, error) {
	date, err := schedule.ParseDate(dateStr)
	if err != nil {
		return schedule.Date{}, 0, 0, err
	}
	start, err := schedule.ParseTimeOfDay(startStr)
	if err != nil {
		return schedule.Date{}, 0, 0, err
	}
	end, err := schedule.ParseTimeOfDay(endStr)
	if err != nil {
		return schedule.Date{}, 0, 0, err
	}
	return date, start, end, nil
}

// toEventPatch parses the schedule fields of in and carries the rest over
// unchanged.
func toEventPatch(in input.UpdateEventInput) (entities.EventPatch, error) {
	patch := entities.EventPatch{
		Title:        in.Title,
		Description:  in.Description,
		Location:     in.Location,
		Category:     in.Category,
		MaxAttendees: in.MaxAttendees,
		Price:        in.Price,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Requirements: in.Requirements,
		Image:        in.Image,
	}
	if in.Status != nil {
		status := entities.EventStatus(*in.Status)
		patch.Status = &status
	}
	if in.Date != nil {
		d, err := schedule.ParseDate(*in.Date)
		if err != nil {
			return patch, err
		}
		patch.Date = &d
	}
	if in.StartTime != nil {
		t, err := schedule.ParseTimeOfDay(*in.StartTime)
		if err != nil {
			return patch, err
		}
		patch.StartTime = &t
	}
	if in.EndTime != nil {
		t, err := schedule.ParseTimeOfDay(*in.EndTime)
		if err != nil {
			return patch, err
		}
		patch.EndTime = &t
	}
	return patch, nil
}
