package application

import (
	"context"
	"errors"

	"eventplanner/internal/domain/entities"
	"eventplanner/internal/ports/output"
)

var _ output.EventNotifier = Notifiers(nil)

// Notifiers fans a lifecycle change out to every configured notifier.
type Notifiers []output.EventNotifier

func (n Notifiers) Notify(ctx context.Context, kind output.EventKind, event *entities.Event) error {
	var errs []error
	for _, notifier := range n {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, kind, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
