package models

import "time"

// Criteria is the complete set of advanced-search parameters at a point
// in time. It is a plain value: every edit copies the previous value
// with one field changed, and the query builder consumes it immediately.
// All fields are independently optional; an empty string or false means
// "omit this fragment". No cross-field validation is performed.
type Criteria struct {
	FromUser     string // username without @ or from: prefix
	ToUser       string
	MentionsUser string
	SinceDate    string // YYYY-MM-DD
	UntilDate    string // YYYY-MM-DD
	MinRetweets  string // textual, emitted verbatim
	MinLikes     string
	MinReplies   string
	ExactPhrase  string
	AnyWords     string // space-separated, OR-grouped
	ExcludeWords string // space-separated, each prefixed with -
	Hashtag      string // without # prefix
	Language     string // ISO language code
	SmartSearch  string // comma-separated terms, OR-grouped

	NativeRetweets bool
	HasImages      bool
	HasVideos      bool
	HasLinks       bool
	Verified       bool
	IsRetweet      bool
}

// DateFormat is the wire format for since:/until: fragments.
const DateFormat = "2006-01-02"

// NewCriteria returns the default criteria: everything empty except the
// date range, which spans today.
func NewCriteria() Criteria {
	today := time.Now().Format(DateFormat)
	return Criteria{
		SinceDate: today,
		UntilDate: today,
	}
}

// IsEmpty reports whether no field would contribute a fragment.
func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}
