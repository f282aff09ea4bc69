package ui

import (
	"errors"
	"strings"
	"testing"
)

// TestSearch_FailureShowsNoSuggestions tests that a failed lookup degrades to an empty list
func TestSearch_FailureShowsNoSuggestions(t *testing.T) {
	client := &mockClient{searchErr: errors.New("status 500")}
	m, _ := loaded(t, client, "Boston")

	m, _ = update(m, key("/"))
	m, _ = typeText(m, "Lon")
	m, _ = update(m, searchLocations(client, "Lon")())

	if len(m.suggestions) != 0 {
		t.Errorf("got %d suggestions, want 0", len(m.suggestions))
	}
	if m.searching {
		t.Error("searching should be false after the failure")
	}
	if m.session.HasError() {
		t.Error("a search failure must not surface a session error")
	}
	if !strings.Contains(m.View(), "No matching locations") {
		t.Error("expected empty-result message")
	}
}

// TestSearch_ShortQueryDoesNotSearch tests the minimum query length
func TestSearch_ShortQueryDoesNotSearch(t *testing.T) {
	client := &mockClient{results: parisResults}
	m, _ := loaded(t, client, "Boston")

	m, _ = update(m, key("/"))
	m, _ = typeText(m, "P")

	if m.searching {
		t.Error("one character should not start a search")
	}
	if len(m.suggestions) != 0 {
		t.Error("one character should not show suggestions")
	}
}

// TestSearch_StaleResultsIgnored tests that results for an older query are dropped
func TestSearch_StaleResultsIgnored(t *testing.T) {
	client := &mockClient{results: parisResults}
	m, _ := loaded(t, client, "Boston")

	m, _ = update(m, key("/"))
	m, _ = typeText(m, "Par")
	m, _ = update(m, suggestionsMsg{query: "Pa", results: parisResults})

	if len(m.suggestions) != 0 {
		t.Error("results for a previous query should be ignored")
	}
	if !m.searching {
		t.Error("still waiting for the current query")
	}
}

// TestSearch_EmptyQueryHandling tests empty search handling
func TestSearch_EmptyQueryHandling(t *testing.T) {
	m, _ := loaded(t, &mockClient{}, "Boston")

	m, _ = update(m, key("/"))
	m, cmd := update(m, key("enter"))

	if m.state != StateSearch {
		t.Errorf("state = %v, want StateSearch", m.state)
	}
	if cmd != nil {
		t.Error("Should not have fetched for an empty query")
	}
}

// TestSearch_EscReturnsToDashboard tests leaving search without fetching
func TestSearch_EscReturnsToDashboard(t *testing.T) {
	m, _ := loaded(t, &mockClient{}, "Boston")

	m, _ = update(m, key("/"))
	m, _ = typeText(m, "qq")
	m, _ = update(m, key("esc"))

	if m.state != StateDashboard {
		t.Errorf("state = %v, want StateDashboard", m.state)
	}
	if m.session.Location != "Boston" {
		t.Errorf("Location = %q, want Boston", m.session.Location)
	}
}
