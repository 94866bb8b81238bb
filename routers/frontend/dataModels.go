package frontend

import (
	"html/template"

	"github.com/unicsmcr/activity_board/board"
)

type boardPageDataModel struct {
	// ListHTML was escaped by the board when it was rendered
	ListHTML     template.HTML
	Options      []board.Option
	Form         board.FormState
	Message      board.StatusMessage
	MessageClass string
}

func newBoardPageDataModel(view board.View) boardPageDataModel {
	return boardPageDataModel{
		ListHTML:     template.HTML(view.ListHTML),
		Options:      view.Options,
		Form:         view.Form,
		Message:      view.Message,
		MessageClass: messageClass(view.Message),
	}
}

// messageClass mirrors the class list of the message element: the severity, plus hidden
func messageClass(message board.StatusMessage) string {
	if message.Class == "" {
		return "hidden"
	}
	if !message.Visible {
		return string(message.Class) + " hidden"
	}
	return string(message.Class)
}

type confirmRemovalPageDataModel struct {
	// Prompt was escaped by the board and is shown as is
	Prompt   string
	Activity string
	Email    string
	Action   string
}

type viewEventDataModel struct {
	ListHTML     string              `json:"listHTML"`
	Options      []board.Option      `json:"options"`
	Message      board.StatusMessage `json:"message"`
	MessageClass string              `json:"messageClass"`
}

func newViewEventDataModel(view board.View) viewEventDataModel {
	return viewEventDataModel{
		ListHTML:     view.ListHTML,
		Options:      view.Options,
		Message:      view.Message,
		MessageClass: messageClass(view.Message),
	}
}
