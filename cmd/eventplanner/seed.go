package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"eventplanner/internal/application"
	"eventplanner/internal/clock"
	"eventplanner/internal/config"
	"eventplanner/internal/domain/entities"
	"eventplanner/internal/domain/schedule"
	"eventplanner/internal/infrastructure/database"
	"eventplanner/internal/ports/input"
	"eventplanner/pkg/tz"
)

type sampleEvent struct {
	title, description, location, category string
	day                                    int
	start, end                             string
}

var julySamples = []sampleEvent{
	{"Summer Team Retreat", "Team building and planning for the second half of the year.", "Mountain Resort", "Retreat", 10, "09:00", "17:00"},
	{"Product Strategy Meeting", "Quarterly review of the product roadmap.", "Conference Room A", "Strategy", 11, "14:00", "16:00"},
	{"Client Workshop", "Hands-on session with key clients.", "Client Center", "Workshop", 12, "10:00", "13:00"},
	{"Technical Training", "Internal training on the new platform.", "Training Lab", "Training", 14, "13:00", "16:00"},
	{"Marketing Campaign Launch", "Kick-off of the summer campaign.", "Marketing Office", "Marketing", 15, "11:00", "12:30"},
	{"Board Meeting", "Monthly board meeting.", "Board Room", "Meeting", 16, "15:00", "17:00"},
	{"Design Sprint", "Five-hour sprint on the onboarding flow.", "Design Studio", "Design", 17, "09:00", "14:00"},
	{"Sales Training", "Negotiation techniques for the sales team.", "Training Room B", "Training", 18, "14:00", "17:00"},
	{"Overlapping Review", "Collides with the design sprint and is skipped.", "Design Studio", "Design", 17, "13:00", "15:00"},
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Create sample July events owned by an admin account, skipping conflicting ones.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "owner-email", Required: true, Usage: "E-mail of the admin who owns the events."},
			&cli.IntFlag{Name: "year", Usage: "Year of the sample July (default: the next July to come)."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.LogLevel)

			pool, err := database.NewPool(c.Context, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			clk := clock.NewSystem(tz.Load(cfg.Timezone))
			year := c.Int("year")
			if year == 0 {
				year = nextJuly(clk.Now())
			}

			users := database.NewUserRepository(pool)
			owner, err := users.FindByEmail(c.Context, c.String("owner-email"))
			if err != nil {
				return fmt.Errorf("find owner: %w", err)
			}

			svc := application.NewEventService(database.NewEventRepository(pool), application.RolePolicy{}, clk, logger)
			created, skipped, err := seed(c.Context, svc, &entities.Principal{UserID: owner.ID, Role: owner.Role}, year, logger)
			if err != nil {
				return err
			}
			logger.Info("seed complete", "created", created, "skipped", skipped, "year", year)
			return nil
		},
	}
}

// eventCreator is the part of the event use case the seeder needs.
type eventCreator interface {
	CreateEvent(ctx context.Context, actor *entities.Principal, in input.CreateEventInput) (*entities.Event, error)
}

func seed(ctx context.Context, svc eventCreator, owner *entities.Principal, year int, logger *slog.Logger) (created, skipped int, err error) {
	for _, s := range julySamples {
		date := schedule.Date{Year: year, Month: time.July, Day: s.day}
		_, err := svc.CreateEvent(ctx, owner, input.CreateEventInput{
			Title:       s.title,
			Description: s.description,
			Date:        date.String(),
			StartTime:   s.start,
			EndTime:     s.end,
			Location:    s.location,
			Category:    s.category,
		})
		var conflict *schedule.ConflictError
		switch {
		case errors.As(err, &conflict), errors.Is(err, schedule.ErrStartsInPast):
			logger.Warn("sample event skipped", "title", s.title, "reason", err)
			skipped++
		case err != nil:
			return created, skipped, fmt.Errorf("seed %q: %w", s.title, err)
		default:
			created++
		}
	}
	return created, skipped, nil
}

// nextJuly returns the year of the first July that has not started yet.
func nextJuly(now time.Time) int {
	if now.Month() < time.July {
		return now.Year()
	}
	return now.Year() + 1
}

func promoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "promote",
		Usage: "Grant the admin role to a registered account.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := setupLogger(cfg.LogLevel)

			pool, err := database.NewPool(c.Context, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer pool.Close()

			svc := application.NewUserService(
				database.NewUserRepository(pool),
				database.NewSessionRepository(pool),
				application.RolePolicy{},
				clock.NewSystem(tz.Load(cfg.Timezone)),
				cfg.SessionTTL,
			)
			user, err := svc.Promote(c.Context, c.String("email"))
			if err != nil {
				return err
			}
			logger.Info("user promoted", "email", user.Email, "id", user.ID)
			return nil
		},
	}
}
