package board

import (
	"context"

	"github.com/pkg/errors"
	"github.com/unicsmcr/activity_board/entities"
	"github.com/unicsmcr/activity_board/observability"
	"go.uber.org/zap"
)

// EventSource is the page element an event comes from
type EventSource string

const (
	SourcePage           EventSource = "page"
	SourceSignupForm     EventSource = "signup-form"
	SourceRemovalControl EventSource = "removal-control"
)

// EventKind is what happened on the source
type EventKind string

const (
	KindLoad   EventKind = "load"
	KindSubmit EventKind = "submit"
	KindClick  EventKind = "click"
)

// names of the values carried by events
const (
	FieldEmail    = "email"
	FieldActivity = "activity"
)

// EventKey identifies a handler in the dispatch table
type EventKey struct {
	Source EventSource
	Kind   EventKind
}

// Event is a page event handed to the board
type Event struct {
	Source EventSource
	Kind   EventKind
	// Values holds the form fields or control data of the event
	Values map[string]string
	// Confirmer answers the confirmation asked by removal clicks
	Confirmer Confirmer
}

// Handler runs the board's reaction to an event
type Handler func(ctx context.Context, event Event)

type binding struct {
	validate func(Event) error
	handle   Handler
}

// Dispatcher maps page events to the Controller's handlers
type Dispatcher struct {
	logger     *zap.Logger
	controller *Controller
	table      map[EventKey]binding
}

// NewDispatcher creates the dispatch table of controller
func NewDispatcher(logger *zap.Logger, controller *Controller) *Dispatcher {
	d := &Dispatcher{
		logger:     logger,
		controller: controller,
	}
	d.table = map[EventKey]binding{
		{SourcePage, KindLoad}: {
			handle: func(ctx context.Context, _ Event) {
				controller.LoadAndRenderActivities(ctx)
			},
		},
		{SourceSignupForm, KindSubmit}: {
			handle: func(ctx context.Context, event Event) {
				controller.HandleSignupSubmit(ctx, SignupSubmission{
					Email:    event.Values[FieldEmail],
					Activity: event.Values[FieldActivity],
				})
			},
		},
		{SourceRemovalControl, KindClick}: {
			validate: d.validateRemovalClick,
			handle: func(ctx context.Context, event Event) {
				controller.HandleDeleteParticipant(ctx, removalRequestOf(event), event.Confirmer)
			},
		},
	}

	return d
}

// Dispatch starts the handler bound to the event as its own task. The task outlives ctx's
// cancellation, like a request already sent by a page cannot be taken back.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) (*Task, error) {
	bound, ok := d.table[EventKey{Source: event.Source, Kind: event.Kind}]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEvent, "%s %s", event.Source, event.Kind)
	}

	if bound.validate != nil {
		if err := bound.validate(event); err != nil {
			return nil, err
		}
	}

	observability.RecordDispatchedEvent(string(event.Source), string(event.Kind))
	d.logger.Debug("dispatching event", zap.String("source", string(event.Source)), zap.String("kind", string(event.Kind)))

	task := &Task{done: make(chan struct{})}
	taskCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(task.done)
		bound.handle(taskCtx, event)
	}()

	return task, nil
}

func (d *Dispatcher) validateRemovalClick(event Event) error {
	if event.Confirmer == nil {
		return ErrMissingConfirmer
	}

	removal := removalRequestOf(event)
	if !d.controller.View().HasRemovalControl(removal.Activity, removal.Email) {
		return errors.Wrapf(ErrUnknownControl, "%s in %s", removal.Email, removal.Activity)
	}

	return nil
}

func removalRequestOf(event Event) RemovalRequest {
	return RemovalRequest{
		Activity: entities.ActivityName(event.Values[FieldActivity]),
		Email:    event.Values[FieldEmail],
	}
}

// Task is a running event handler
type Task struct {
	done chan struct{}
}

// Done is closed once the handler returned
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the handler returned or ctx is done
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
