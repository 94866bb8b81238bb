package board

import (
	"context"
	"fmt"

	"github.com/unicsmcr/activity_board/entities"
)

// Confirmer asks the user to confirm an action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface
type ConfirmerFunc func(ctx context.Context, prompt string) bool

// Confirm calls f
func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// Answer is a Confirmer that gives the same answer to every prompt
type Answer bool

// Confirm returns the answer
func (a Answer) Confirm(context.Context, string) bool {
	return bool(a)
}

// ConfirmPrompt is the question asked before a participant is removed
func ConfirmPrompt(activity entities.ActivityName, email string) string {
	return fmt.Sprintf("Remove %s from %s?", EscapeHTML(email), EscapeHTML(string(activity)))
}
