package dtos

// ReflectionRequest is the body of a generation request. Date is nil when the
// field is absent.
type ReflectionRequest struct {
	Date *string `json:"date"`
}

// PromptDate renders Date the way it is embedded in the prompt. An absent date
// becomes "undefined"; no further validation is done here.
func (r ReflectionRequest) PromptDate() string {
	if r.Date == nil {
		return "undefined"
	}
	return *r.Date
}

// ReflectionResponse documents the object the generation service is asked to
// produce. The handler passes the object through without enforcing it.
type ReflectionResponse struct {
	Feast      string `json:"feast"`
	Season     string `json:"season"`
	Color      string `json:"color"`
	Scripture  string `json:"scripture"`
	VerseRef   string `json:"verse_ref"`
	Virtue     string `json:"virtue"`
	Action     string `json:"action"`
	Reflection string `json:"reflection"`
	Prayer     string `json:"prayer"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
