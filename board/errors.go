package board

import "errors"

var (
	// ErrUnknownEvent is returned by the Dispatcher for events no handler is bound to
	ErrUnknownEvent = errors.New("no handler bound to event")
	// ErrUnknownControl is returned by the Dispatcher when a removal click targets
	// a control the current list does not show
	ErrUnknownControl = errors.New("removal control is not rendered")
	// ErrMissingConfirmer is returned by the Dispatcher when a removal click carries no Confirmer
	ErrMissingConfirmer = errors.New("removal click has no confirmer")
)
