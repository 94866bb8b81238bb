package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unicsmcr/activity_board/entities"
)

var testCatalog = entities.ActivityCatalog{
	{
		Name: "Chess Club",
		Details: entities.ActivityDetails{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	},
	{
		Name: "Programming Class",
		Details: entities.ActivityDetails{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{},
		},
	},
	{
		Name: "Gym Class",
		Details: entities.ActivityDetails{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 1,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu", "liam@mergington.edu"},
		},
	},
}

func Test_Render__should_render_a_card_and_an_option_per_activity(t *testing.T) {
	rendered, err := Render(testCatalog)
	require.NoError(t, err)

	assert.Equal(t, len(testCatalog), strings.Count(rendered.ListHTML, `class="activity-card"`))
	require.Len(t, rendered.Options, len(testCatalog))
	for i, activity := range testCatalog {
		assert.Equal(t, string(activity.Name), rendered.Options[i].Value)
		assert.Equal(t, string(activity.Name), rendered.Options[i].Label)
		assert.Contains(t, rendered.ListHTML, "<h4>"+string(activity.Name)+"</h4>")
	}
}

func Test_Render__should_keep_catalog_order(t *testing.T) {
	rendered, err := Render(testCatalog)
	require.NoError(t, err)

	chess := strings.Index(rendered.ListHTML, "<h4>Chess Club</h4>")
	programming := strings.Index(rendered.ListHTML, "<h4>Programming Class</h4>")
	gym := strings.Index(rendered.ListHTML, "<h4>Gym Class</h4>")
	assert.True(t, chess < programming && programming < gym)
}

func Test_Render__should_show_unclamped_spots_left(t *testing.T) {
	rendered, err := Render(testCatalog)
	require.NoError(t, err)

	assert.Contains(t, rendered.ListHTML, "<strong>Availability:</strong> 10 spots left")
	assert.Contains(t, rendered.ListHTML, "<strong>Availability:</strong> 20 spots left")
	assert.Contains(t, rendered.ListHTML, "<strong>Availability:</strong> -2 spots left")
}

func Test_Render__participants_block(t *testing.T) {
	tests := []struct {
		name             string
		participants     []string
		wantItems        int
		wantPlaceholder  bool
		wantRemovalCount int
	}{
		{
			name:            "placeholder when there are no participants",
			participants:    []string{},
			wantPlaceholder: true,
		},
		{
			name:            "placeholder when participants are missing",
			participants:    nil,
			wantPlaceholder: true,
		},
		{
			name:             "one removal item per participant",
			participants:     []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"},
			wantItems:        3,
			wantRemovalCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := Render(entities.ActivityCatalog{{
				Name:    "Art Club",
				Details: entities.ActivityDetails{MaxParticipants: 5, Participants: tt.participants},
			}})
			require.NoError(t, err)

			assert.Equal(t, tt.wantPlaceholder, strings.Contains(rendered.ListHTML, `<p class="no-participants">No participants yet</p>`))
			assert.Equal(t, tt.wantItems, strings.Count(rendered.ListHTML, "<li>"))
			assert.Equal(t, tt.wantRemovalCount, strings.Count(rendered.ListHTML, `class="delete-btn"`))
			assert.Len(t, rendered.RemovalControls, tt.wantRemovalCount)
			for i, email := range tt.participants {
				assert.Equal(t, RemovalControl{Activity: "Art Club", Email: email}, rendered.RemovalControls[i])
			}
		})
	}
}

func Test_Render__should_tag_removal_controls_with_activity_and_email(t *testing.T) {
	rendered, err := Render(testCatalog[:1])
	require.NoError(t, err)

	assert.Contains(t, rendered.ListHTML, `data-activity="Chess Club" data-email="michael@mergington.edu"`)
	assert.Contains(t, rendered.ListHTML, `action="`+RemovalActionPath+`"`)
	assert.Contains(t, rendered.ListHTML, `<input type="hidden" name="email" value="daniel@mergington.edu">`)
}

func Test_Render__should_escape_text_from_the_API(t *testing.T) {
	rendered, err := Render(entities.ActivityCatalog{{
		Name: `<script>alert('name')</script>`,
		Details: entities.ActivityDetails{
			Description:     `Tom & Jerry's "club"`,
			Schedule:        "<b>Mondays</b>",
			MaxParticipants: 2,
			Participants:    []string{`"><img src=x onerror=alert(1)>@evil.com`},
		},
	}})
	require.NoError(t, err)

	assert.NotContains(t, rendered.ListHTML, "<script>")
	assert.NotContains(t, rendered.ListHTML, "<b>")
	assert.NotContains(t, rendered.ListHTML, "<img")
	assert.Contains(t, rendered.ListHTML, "<h4>&lt;script&gt;alert(&#39;name&#39;)&lt;/script&gt;</h4>")
	assert.Contains(t, rendered.ListHTML, "<p>Tom &amp; Jerry&#39;s &quot;club&quot;</p>")
	assert.Contains(t, rendered.ListHTML, "&lt;b&gt;Mondays&lt;/b&gt;")
	assert.Contains(t, rendered.ListHTML, `data-email="&quot;&gt;&lt;img src=x onerror=alert(1)&gt;@evil.com"`)

	// option values are the raw name; the page template escapes them
	assert.Equal(t, `<script>alert('name')</script>`, rendered.Options[0].Value)
}

func Test_Render__should_be_idempotent(t *testing.T) {
	first, err := Render(testCatalog)
	require.NoError(t, err)
	second, err := Render(testCatalog)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_Render__should_render_nothing_for_empty_catalog(t *testing.T) {
	rendered, err := Render(entities.ActivityCatalog{})
	require.NoError(t, err)

	assert.Empty(t, rendered.ListHTML)
	assert.Empty(t, rendered.Options)
	assert.Empty(t, rendered.RemovalControls)
}
