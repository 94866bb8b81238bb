package board

import "github.com/unicsmcr/activity_board/entities"

// MessageClass is the severity of a status message
type MessageClass string

const (
	MessageSuccess MessageClass = "success"
	MessageError   MessageClass = "error"
)

// StatusMessage is the feedback shown for the outcome of the last signup or removal
type StatusMessage struct {
	Text    string       `json:"text"`
	Class   MessageClass `json:"class"`
	Visible bool         `json:"visible"`
}

// Option is an entry of the activity select
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// RemovalControl identifies a participant's removal button in the rendered list
type RemovalControl struct {
	Activity entities.ActivityName `json:"activity"`
	Email    string                `json:"email"`
}

// FormState holds the values of the signup form
type FormState struct {
	Email    string `json:"email"`
	Activity string `json:"activity"`
}

// View is the state of the page elements owned by the board: the activity list container,
// the activity select, the signup form and the status message element
type View struct {
	// ListHTML is the markup of the list container. Text from the API is already escaped
	ListHTML        string           `json:"listHTML"`
	Options         []Option         `json:"options"`
	RemovalControls []RemovalControl `json:"removalControls"`
	Form            FormState        `json:"form"`
	Message         StatusMessage    `json:"message"`
}

// HasRemovalControl reports whether the list currently shows a removal button for email in activity
func (v View) HasRemovalControl(activity entities.ActivityName, email string) bool {
	for _, control := range v.RemovalControls {
		if control.Activity == activity && control.Email == email {
			return true
		}
	}
	return false
}

func (v View) clone() View {
	cloned := v
	cloned.Options = append([]Option(nil), v.Options...)
	cloned.RemovalControls = append([]RemovalControl(nil), v.RemovalControls...)
	return cloned
}
