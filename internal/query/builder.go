// Package query builds Twitter/X advanced-search query strings from
// structured criteria. The builder is total: it never fails, performs
// no validation, and always returns a string (possibly empty).
package query

import (
	"strings"

	"xsearch/internal/models"
)

// Build translates criteria into the final query string. Fragments are
// emitted in a fixed order and joined with single spaces; fields that
// are empty or false contribute nothing. Numeric-looking fields are
// emitted verbatim without parsing.
func Build(c models.Criteria) string {
	fragments := ParseSmartSearch(c.SmartSearch)

	if c.FromUser != "" {
		fragments = append(fragments, "from:"+c.FromUser)
	}
	if c.ToUser != "" {
		fragments = append(fragments, "to:"+c.ToUser)
	}
	if c.MentionsUser != "" {
		fragments = append(fragments, "@"+c.MentionsUser)
	}
	if c.ExactPhrase != "" {
		// Literal quotes, no internal escaping
		fragments = append(fragments, `"`+c.ExactPhrase+`"`)
	}
	if c.AnyWords != "" {
		words := strings.Split(c.AnyWords, " ")
		// Always parenthesized, even for a single word
		fragments = append(fragments, "("+strings.Join(words, " OR ")+")")
	}
	if c.ExcludeWords != "" {
		words := strings.Split(c.ExcludeWords, " ")
		fragments = append(fragments, "-"+strings.Join(words, " -"))
	}
	if c.Hashtag != "" {
		fragments = append(fragments, "#"+c.Hashtag)
	}
	if c.SinceDate != "" {
		fragments = append(fragments, "since:"+c.SinceDate)
	}
	if c.UntilDate != "" {
		fragments = append(fragments, "until:"+c.UntilDate)
	}
	if c.MinRetweets != "" {
		fragments = append(fragments, "min_retweets:"+c.MinRetweets)
	}
	if c.MinLikes != "" {
		fragments = append(fragments, "min_faves:"+c.MinLikes)
	}
	if c.MinReplies != "" {
		fragments = append(fragments, "min_replies:"+c.MinReplies)
	}
	if c.Language != "" {
		fragments = append(fragments, "lang:"+c.Language)
	}
	if c.NativeRetweets {
		fragments = append(fragments, "filter:nativeretweets")
	}
	if c.HasImages {
		fragments = append(fragments, "filter:images")
	}
	if c.HasVideos {
		fragments = append(fragments, "filter:videos")
	}
	if c.HasLinks {
		fragments = append(fragments, "filter:links")
	}
	if c.Verified {
		fragments = append(fragments, "filter:verified")
	}
	if c.IsRetweet {
		fragments = append(fragments, "filter:retweets")
	}

	return strings.Join(fragments, " ")
}
