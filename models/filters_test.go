package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterStateZeroValueSerializesEmpty(t *testing.T) {
	var f FilterState
	require.True(t, f.IsZero())
	require.Empty(t, f.Query())
}

func TestFilterStateQueryOmitsDefaults(t *testing.T) {
	f := FilterState{
		Genre:          28,
		Language:       "pt-BR",
		SortBy:         DefaultSort,
		VoteAverageGTE: 7.5,
	}
	q := f.Query()

	require.Equal(t, "28", q.Get("genre"))
	require.Equal(t, "pt", q.Get("language"))
	require.Equal(t, "7.5", q.Get("vote_average_gte"))

	// Defaults and unset fields never appear.
	for _, key := range []string{"year", "country", "provider", "sort_by", "vote_count_gte", "runtime_gte", "runtime_lte"} {
		_, present := q[key]
		require.Falsef(t, present, "unexpected %s in query", key)
	}
}

func TestFilterStateQueryFullSet(t *testing.T) {
	f := FilterState{
		Genre:          18,
		Year:           1999,
		Language:       "en",
		Country:        "us",
		Provider:       8,
		SortBy:         "vote_average.desc",
		VoteAverageGTE: 6,
		VoteCountGTE:   250,
		RuntimeGTE:     80,
		RuntimeLTE:     180,
	}
	q := f.Query()

	require.Equal(t, "18", q.Get("genre"))
	require.Equal(t, "1999", q.Get("year"))
	require.Equal(t, "en", q.Get("language"))
	require.Equal(t, "US", q.Get("country"))
	require.Equal(t, "8", q.Get("provider"))
	require.Equal(t, "vote_average.desc", q.Get("sort_by"))
	require.Equal(t, "6", q.Get("vote_average_gte"))
	require.Equal(t, "250", q.Get("vote_count_gte"))
	require.Equal(t, "80", q.Get("runtime_gte"))
	require.Equal(t, "180", q.Get("runtime_lte"))
	require.Len(t, q, 10)
}

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"en":    "en",
		"EN":    "en",
		"pt-BR": "pt",
		"pt_BR": "pt",
		" fr ":  "fr",
		"":      "",
		"???":   "",
		"123":   "",
	}
	for input, want := range cases {
		if got := NormalizeLanguage(input); got != want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", input, got, want)
		}
	}
}
