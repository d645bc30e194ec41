package model

import "strings"

// Relation enumerates the associations a client may ask to eager-load
// via the populate query parameter. Keeping this a closed set avoids
// ad hoc string matching scattered through the handlers.
type Relation string

const (
	// RelationCourse loads a teacher's courses collection.
	RelationCourse Relation = "course"
)

// Relations is the set of relations requested by one listing call.
type Relations map[Relation]bool

// Has reports whether r was requested.
func (rs Relations) Has(r Relation) bool {
	return rs[r]
}

// ParsePopulate parses a comma-separated populate parameter into the set
// of recognized relations. Tokens are matched case-insensitively and
// unknown tokens are silently dropped, so a typo degrades to "not
// populated" rather than an error.
func ParsePopulate(raw string) Relations {
	rs := Relations{}
	if raw == "" {
		return rs
	}

	for _, token := range strings.Split(raw, ",") {
		switch Relation(strings.ToLower(strings.TrimSpace(token))) {
		case RelationCourse:
			rs[RelationCourse] = true
		}
	}
	return rs
}
