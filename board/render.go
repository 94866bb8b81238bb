package board

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/unicsmcr/activity_board/entities"
)

const (
	// LoadingHTML is shown in the list container until the first fetch completes
	LoadingHTML = "<p>Loading activities...</p>"
	// FetchFailureHTML replaces the list container when the activities could not be fetched
	FetchFailureHTML = "<p>Failed to load activities. Please try again later.</p>"
	// RemovalActionPath is where the removal controls submit to
	RemovalActionPath = "/participants/remove"
)

// the card template is a text template: every value coming from the API goes through escape
const activityCardTemplate = `<div class="activity-card">
  <h4>{{escape .Name}}</h4>
  <p>{{escape .Description}}</p>
  <p><strong>Schedule:</strong> {{escape .Schedule}}</p>
  <p><strong>Availability:</strong> {{.SpotsLeft}} spots left</p>
  <div class="participants-section">
    <h5 class="participants-title">Participants</h5>
    {{- if .Participants}}
    <ul class="participants-list">
      {{- range .Participants}}
      <li><span class="participant-email">{{escape .}}</span><form class="delete-form" method="post" action="{{$.Action}}"><input type="hidden" name="activity" value="{{escape $.Name}}"><input type="hidden" name="email" value="{{escape .}}"><button class="delete-btn" type="submit" data-activity="{{escape $.Name}}" data-email="{{escape .}}" title="Remove participant">✕</button></form></li>
      {{- end}}
    </ul>
    {{- else}}
    <p class="no-participants">No participants yet</p>
    {{- end}}
  </div>
</div>
`

var cardTemplate = template.Must(template.New("activityCard").
	Funcs(template.FuncMap{"escape": EscapeHTML}).
	Parse(activityCardTemplate))

type activityCardDataModel struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []string
	Action       string
}

// RenderedCatalog is the part of the View rebuilt from a catalog
type RenderedCatalog struct {
	ListHTML        string
	Options         []Option
	RemovalControls []RemovalControl
}

// Render builds the list markup, the select options and the removal controls for catalog,
// in catalog order. The output depends on catalog only.
func Render(catalog entities.ActivityCatalog) (RenderedCatalog, error) {
	var list strings.Builder
	rendered := RenderedCatalog{
		Options:         make([]Option, 0, len(catalog)),
		RemovalControls: []RemovalControl{},
	}

	for _, activity := range catalog {
		err := cardTemplate.Execute(&list, activityCardDataModel{
			Name:         string(activity.Name),
			Description:  activity.Details.Description,
			Schedule:     activity.Details.Schedule,
			SpotsLeft:    activity.Details.SpotsLeft(),
			Participants: activity.Details.Participants,
			Action:       RemovalActionPath,
		})
		if err != nil {
			return RenderedCatalog{}, errors.Wrapf(err, "could not render activity %s", activity.Name)
		}

		for _, email := range activity.Details.Participants {
			rendered.RemovalControls = append(rendered.RemovalControls, RemovalControl{
				Activity: activity.Name,
				Email:    email,
			})
		}

		rendered.Options = append(rendered.Options, Option{
			Value: string(activity.Name),
			Label: string(activity.Name),
		})
	}

	rendered.ListHTML = list.String()
	return rendered, nil
}
