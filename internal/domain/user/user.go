package user

// User is the full profile as stored in the graph, with skills and
// interests resolved through HAS_SKILL / HAS_INTEREST edges.
type User struct {
	Username     string
	Name         string
	Number       string
	Email        string
	Role         string
	Organization string
	Experience   int
	Availability bool
	Skills       []string
	Interests    []string
}

// Summary is the shape returned by match and listing queries. Skills
// always carries the user's full skill list, not just the skills that
// matched a filter.
type Summary struct {
	Username     string
	Name         string
	Role         string
	Experience   int
	Availability bool
	Email        string
	Number       string
	Skills       []string
}

type Contact struct {
	Email  string
	Number string
}

// Similar is one entry of a similarity result: another user plus the
// interest names shared with the requester.
type Similar struct {
	Name            string
	Email           string
	Number          string
	CommonInterests []string
}

// MatchQuery parameterizes a match traversal. An empty Role means any
// role; an empty Skills set means no skill constraint.
type MatchQuery struct {
	Role          string
	Skills        []string
	MinExperience int
}

// ListFilter parameterizes the durable listing query. Pointer fields
// distinguish "not filtered" from zero values.
type ListFilter struct {
	Role          string
	Availability  *bool
	Skill         string
	Interest      string
	MinExperience *int
	Skip          int
	Limit         int
}
