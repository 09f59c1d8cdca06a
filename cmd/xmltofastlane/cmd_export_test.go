package main

import (
	"testing"

	"github.com/communitymedia/mediaphone/exporter"
)

var testSources = []exporter.Source{
	{Path: "/res/values/store_listing.xml", Code: "", Locale: "en-US", Mapped: true},
	{Path: "/res/values-de/store_listing.xml", Code: "-de", Locale: "de"},
	{Path: "/res/values-es/store_listing.xml", Code: "-es", Locale: "es-ES", Mapped: true},
}

func TestMatchesLocale(t *testing.T) {
	cases := []struct {
		src   int
		token string
		want  bool
	}{
		{0, "default", true},
		{0, "en-US", true},
		{0, "", true},
		{1, "de", true},
		{1, "-de", true},
		{2, "es-es", true},
		{2, "es", true},
		{2, "default", false},
		{1, "es-ES", false},
	}
	for _, c := range cases {
		if got := matchesLocale(testSources[c.src], c.token); got != c.want {
			t.Fatalf("matchesLocale(%s, %q) = %v, want %v", testSources[c.src].Locale, c.token, got, c.want)
		}
	}
}

func TestBuildFilter(t *testing.T) {
	defer func() { exportLocales = "" }()

	t.Run("All", func(t *testing.T) {
		exportLocales = ""
		filter, err := buildFilter(testSources)
		if err != nil || filter != nil {
			t.Fatalf("buildFilter() = %v, %v; want nil filter", filter != nil, err)
		}
	})
	t.Run("Subset", func(t *testing.T) {
		exportLocales = "de, es-ES"
		filter, err := buildFilter(testSources)
		if err != nil {
			t.Fatal(err)
		}
		if filter(testSources[0]) || !filter(testSources[1]) || !filter(testSources[2]) {
			t.Fatal("filter selected the wrong sources")
		}
	})
	t.Run("Unknown", func(t *testing.T) {
		exportLocales = "fr"
		if _, err := buildFilter(testSources); err == nil {
			t.Fatal("expected error for unknown locale")
		}
	})
}
