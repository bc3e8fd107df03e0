package models

// ChatAnswer is the assistant response to a chat query. Movies is
// populated when the assistant recommends specific titles.
type ChatAnswer struct {
	Response string  `json:"response"`
	Movies   []Movie `json:"movies,omitempty"`
}
