package entities

// Suggestion is a titled filling combination returned by the suggestion
// provider. Filling names must resolve against the catalog before a
// suggestion is surfaced; sets that do not are dropped silently.

type Suggestion struct {
	Title       string   `json:"title"`
	Fillings    []string `json:"fillings"`
	Description string   `json:"description"`
}
