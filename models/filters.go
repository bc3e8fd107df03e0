package models

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// FilterState holds every discover filter a browse surface can set.
// The zero value means "no filter"; Query serializes only the fields
// that differ from their defaults, so the backend sees exactly the
// active filters and nothing else.
type FilterState struct {
	Genre          int64
	Year           int
	Language       string
	Country        string
	Provider       int64
	SortBy         string
	VoteAverageGTE float64
	VoteCountGTE   int64
	RuntimeGTE     int
	RuntimeLTE     int
}

// DefaultSort is what the backend applies when no sort is requested;
// sending it explicitly would be redundant.
const DefaultSort = "popularity.desc"

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

// Query serializes the non-default fields as discover query
// parameters. Default-valued fields are omitted entirely.
func (f FilterState) Query() url.Values {
	q := url.Values{}
	if f.Genre != 0 {
		q.Set("genre", strconv.FormatInt(f.Genre, 10))
	}
	if f.Year != 0 {
		q.Set("year", strconv.Itoa(f.Year))
	}
	if lang := NormalizeLanguage(f.Language); lang != "" {
		q.Set("language", lang)
	}
	if country := strings.ToUpper(strings.TrimSpace(f.Country)); country != "" {
		q.Set("country", country)
	}
	if f.Provider != 0 {
		q.Set("provider", strconv.FormatInt(f.Provider, 10))
	}
	if sort := strings.TrimSpace(f.SortBy); sort != "" && sort != DefaultSort {
		q.Set("sort_by", sort)
	}
	if f.VoteAverageGTE > 0 {
		q.Set("vote_average_gte", strconv.FormatFloat(f.VoteAverageGTE, 'f', -1, 64))
	}
	if f.VoteCountGTE > 0 {
		q.Set("vote_count_gte", strconv.FormatInt(f.VoteCountGTE, 10))
	}
	if f.RuntimeGTE > 0 {
		q.Set("runtime_gte", strconv.Itoa(f.RuntimeGTE))
	}
	if f.RuntimeLTE > 0 {
		q.Set("runtime_lte", strconv.Itoa(f.RuntimeLTE))
	}
	return q
}

// NormalizeLanguage canonicalizes a user-supplied language filter into
// an ISO 639-1 base code ("en", "pt"). Unparseable input is dropped
// rather than sent to the backend verbatim.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}
