package entities

// ActivityName is the key of an activity in the catalog and in the activity URLs
type ActivityName string

// ActivityDetails is the struct to store an activity as returned by the activities API
type ActivityDetails struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity of the activity.
// The value is not clamped and is negative when the activity is over-enrolled.
func (d ActivityDetails) SpotsLeft() int {
	return d.MaxParticipants - len(d.Participants)
}

// Activity is a single catalog entry
type Activity struct {
	Name    ActivityName
	Details ActivityDetails
}

// ActivityCatalog stores the activities in the order the API returned them
type ActivityCatalog []Activity

// Names returns the activity names in catalog order
func (c ActivityCatalog) Names() []ActivityName {
	names := make([]ActivityName, 0, len(c))
	for _, activity := range c {
		names = append(names, activity.Name)
	}

	return names
}
