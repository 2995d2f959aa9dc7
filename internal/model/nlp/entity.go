package nlp

// Entity types contributed by the recognizer and the phrase matcher. Free-form
// labels from the recognizer pass through lowercased when none of these apply.
const (
	EntityDate         = "date"
	EntityTime         = "time"
	EntityPerson       = "person"
	EntityOrganization = "organization"
	EntityLocation     = "location"
	EntityPriority     = "priority"
	EntityCategory     = "category"
	EntityDuration     = "duration"
)

// Entity is a typed substring with its character span in the source text.
type Entity struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// EntityMap groups extracted values by entity type, first-seen order preserved
// within each type. Values may be normalized (relative dates); the surface form
// lives on the Entity span list.
type EntityMap map[string][]string
