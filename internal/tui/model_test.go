package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sushantvema/zupo/internal/core/domain"
	"github.com/sushantvema/zupo/internal/pkg/config"
)

type stubSearcher struct {
	searchFn func(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)
	calls    int
	lastReq  *domain.SearchRequest
}

func (s *stubSearcher) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	s.calls++
	s.lastReq = req
	if s.searchFn != nil {
		return s.searchFn(ctx, req)
	}
	return &domain.SearchResponse{}, nil
}

type stubCompleter struct {
	completeFn func(ctx context.Context, req *domain.AutocompleteRequest) (*domain.AutocompleteResponse, error)
	calls      int
	lastReq    *domain.AutocompleteRequest
}

func (s *stubCompleter) Autocomplete(ctx context.Context, req *domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
	s.calls++
	s.lastReq = req
	if s.completeFn != nil {
		return s.completeFn(ctx, req)
	}
	return &domain.AutocompleteResponse{}, nil
}

type stubDetails struct {
	detailsFn func(ctx context.Context, req *domain.DetailsRequest) (*domain.Place, error)
	calls     int
	lastReq   *domain.DetailsRequest
}

func (s *stubDetails) Details(ctx context.Context, req *domain.DetailsRequest) (*domain.Place, error) {
	s.calls++
	s.lastReq = req
	if s.detailsFn != nil {
		return s.detailsFn(ctx, req)
	}
	return &domain.Place{ID: req.PlaceID}, nil
}

type stubs struct {
	searcher  *stubSearcher
	completer *stubCompleter
	details   *stubDetails
}

func newTestModel(cfg *config.Config) (model, *stubs) {
	if cfg == nil {
		cfg = &config.Config{Timeout: 1}
	}
	s := &stubs{
		searcher:  &stubSearcher{},
		completer: &stubCompleter{},
		details:   &stubDetails{},
	}
	m := newModel(Services{Search: s.searcher, Complete: s.completer, Details: s.details}, cfg)
	return m, s
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestDoubleCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if isQuit(cmd) {
		t.Fatal("first Ctrl+C must not quit")
	}
	if m.status != "Press Ctrl+C again to quit" {
		t.Errorf("status = %q", m.status)
	}

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("second Ctrl+C inside the window must quit")
	}
}

func TestCtrlCDisarmedByOtherKey(t *testing.T) {
	m, _ := newTestModel(nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, _ = update(t, m, keyRunes("x"))

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if isQuit(cmd) {
		t.Fatal("Ctrl+C after another key should re-arm, not quit")
	}
}

func TestTypingDebouncesAutocomplete(t *testing.T) {
	m, s := newTestModel(nil)
	s.completer.completeFn = func(_ context.Context, _ *domain.AutocompleteRequest) (*domain.AutocompleteResponse, error) {
		return &domain.AutocompleteResponse{Suggestions: []domain.Suggestion{
			{QueryPrediction: &domain.QueryPrediction{Text: &domain.FormattedText{Text: "cafe"}}},
		}}, nil
	}

	m, cmd := update(t, m, keyRunes("c"))
	if cmd == nil {
		t.Fatal("keystroke should arm the debounce timer")
	}
	staleSeq := m.acSeq

	m, _ = update(t, m, keyRunes("a"))

	// The first keystroke's timer fires after the second keystroke.
	m, cmd = update(t, m, debounceMsg{seq: staleSeq})
	if cmd != nil {
		t.Fatal("stale debounce must not fire a request")
	}
	if s.completer.calls != 0 {
		t.Fatalf("completer called %d times before the live debounce", s.completer.calls)
	}

	m, cmd = update(t, m, debounceMsg{seq: m.acSeq})
	if cmd == nil {
		t.Fatal("live debounce should fire the autocomplete request")
	}
	msg := cmd()
	if s.completer.calls != 1 {
		t.Fatalf("completer calls = %d, want 1", s.completer.calls)
	}
	if s.completer.lastReq.Input != "ca" {
		t.Errorf("autocomplete input = %q, want %q", s.completer.lastReq.Input, "ca")
	}
	if s.completer.lastReq.SessionToken != m.sessionToken {
		t.Error("autocomplete should carry the current session token")
	}

	m, _ = update(t, m, msg)
	if len(m.suggestions) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(m.suggestions))
	}
}

func TestStaleSuggestionsDropped(t *testing.T) {
	m, _ := newTestModel(nil)
	m.acSeq = 7

	m, _ = update(t, m, suggestionsMsg{seq: 6, resp: &domain.AutocompleteResponse{
		Suggestions: []domain.Suggestion{{QueryPrediction: &domain.QueryPrediction{}}},
	}})

	if len(m.suggestions) != 0 {
		t.Error("stale suggestion responses must be dropped")
	}
}

func TestEnterRunsSearchAndRotatesSession(t *testing.T) {
	m, s := newTestModel(nil)
	s.searcher.searchFn = func(_ context.Context, _ *domain.SearchRequest) (*domain.SearchResponse, error) {
		return &domain.SearchResponse{Places: []domain.Place{
			{ID: "a", DisplayName: &domain.LocalizedText{Text: "First"}},
			{ID: "b", DisplayName: &domain.LocalizedText{Text: "Second"}},
		}}, nil
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, keyRunes("coffee"))
	before := m.sessionToken

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter with a query should start a search")
	}
	if !m.loading {
		t.Error("search should set loading")
	}
	if m.focus != focusResults {
		t.Error("focus should move to results")
	}
	if m.sessionToken == before {
		t.Error("executing a search should rotate the session token")
	}

	resp, err := s.searcher.searchFn(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	m, _ = update(t, m, searchDoneMsg{seq: m.searchSeq, resp: resp})

	if m.loading {
		t.Error("search completion should clear loading")
	}
	if len(m.results.Items()) != 2 {
		t.Fatalf("list items = %d, want 2", len(m.results.Items()))
	}
	if m.status != "2 results" {
		t.Errorf("status = %q", m.status)
	}
	if m.detail == nil || m.detail.ID != "a" {
		t.Error("details pane should show the first result")
	}
}

func TestEmptyQueryEnterDoesNothing(t *testing.T) {
	m, s := newTestModel(nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Enter with no query should not start a search")
	}
	if m.focus != focusSearch {
		t.Error("focus should stay on the search bar")
	}
	if s.searcher.calls != 0 {
		t.Error("searcher must not be called")
	}
}

func TestStaleSearchResponseDropped(t *testing.T) {
	m, _ := newTestModel(nil)
	m.searchSeq = 5
	m.loading = true

	m, _ = update(t, m, searchDoneMsg{seq: 4, resp: &domain.SearchResponse{
		Places: []domain.Place{{ID: "stale"}},
	}})

	if len(m.results.Items()) != 0 {
		t.Error("stale search responses must be dropped")
	}
	if !m.loading {
		t.Error("a stale response must not clear the in-flight state")
	}
}

func TestSearchErrorSetsStatus(t *testing.T) {
	m, _ := newTestModel(nil)
	m.searchSeq = 1
	m.loading = true

	m, _ = update(t, m, searchDoneMsg{seq: 1, err: errors.New("API error (HTTP 403): quota exceeded")})

	if m.loading {
		t.Error("error should clear loading")
	}
	if !m.statusErr {
		t.Error("status should be marked as an error")
	}
	if m.status != "Search error: API error (HTTP 403): quota exceeded" {
		t.Errorf("status = %q", m.status)
	}
}

func TestBuildSearchRequestAppliesFilters(t *testing.T) {
	lat, lng := 48.2082, 16.3738
	cfg := &config.Config{
		Timeout:  1,
		Location: config.LocationConfig{Lat: &lat, Lng: &lng},
	}
	m, _ := newTestModel(cfg)
	m.filters.radius = 2000
	m.filters.minRating = 4.0
	m.filters.priceLevels[2] = true
	m.filters.priceLevels[3] = true
	m.filters.openNow = true
	m.typeInput.SetValue("cafe")

	req := m.buildSearchRequest("coffee")

	if req.Query != "coffee" || req.IncludedType != "cafe" {
		t.Errorf("query/type = %q/%q", req.Query, req.IncludedType)
	}
	if req.MinRating != 4.0 || !req.OpenNow || req.Limit != 10 {
		t.Errorf("minRating/openNow/limit = %v/%v/%d", req.MinRating, req.OpenNow, req.Limit)
	}
	if len(req.PriceLevels) != 2 || req.PriceLevels[0] != "PRICE_LEVEL_MODERATE" || req.PriceLevels[1] != "PRICE_LEVEL_EXPENSIVE" {
		t.Errorf("priceLevels = %v", req.PriceLevels)
	}
	if req.Location == nil {
		t.Fatal("saved location should become a bias circle")
	}
	if req.Location.Center.Lat != lat || req.Location.Center.Lng != lng || req.Location.Radius != 2000 {
		t.Errorf("bias = %+v", req.Location)
	}
}

func TestNoLocationMeansNoBias(t *testing.T) {
	m, _ := newTestModel(nil)

	if req := m.buildSearchRequest("coffee"); req.Location != nil {
		t.Error("without a saved location the request should carry no bias")
	}
}

func TestSuggestionAcceptRunsSearch(t *testing.T) {
	m, s := newTestModel(nil)
	m.suggestions = []domain.Suggestion{
		{PlacePrediction: &domain.PlacePrediction{Text: &domain.FormattedText{Text: "Cafe Central Vienna"}}},
	}
	m.setFocus(focusSuggestions)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("accepting a suggestion should start a search")
	}
	if m.input.Value() != "Cafe Central Vienna" {
		t.Errorf("input = %q", m.input.Value())
	}
	if m.focus != focusResults {
		t.Error("focus should move to results")
	}
	if len(m.suggestions) != 0 {
		t.Error("the dropdown should close")
	}
	_ = s
}

func TestFilterPanelKeys(t *testing.T) {
	m, _ := newTestModel(nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusFilters {
		t.Fatal("Tab from search should focus filters")
	}

	m, _ = update(t, m, keyRunes("j"))
	if m.filterCursor != filterRadius {
		t.Fatalf("filterCursor = %v, want radius row", m.filterCursor)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.filters.radius != 10000 {
		t.Errorf("Enter on radius row should cycle 5000 to 10000, got %v", m.filters.radius)
	}

	m, _ = update(t, m, keyRunes("3"))
	if !m.filters.priceLevels[3] {
		t.Error("digit keys should toggle price tiers from the panel")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusResults {
		t.Error("Tab from filters should focus results")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusSearch {
		t.Error("Tab from results should wrap back to search")
	}
}

func TestTypeFilterEditing(t *testing.T) {
	m, _ := newTestModel(nil)
	m.setFocus(focusFilters)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.focus != focusFilterEditing {
		t.Fatal("Enter on the type row should start editing")
	}

	m, _ = update(t, m, keyRunes("thai"))
	if len(m.typeMatches) == 0 || m.typeMatches[0] != "thai_restaurant" {
		t.Fatalf("typeMatches = %v", m.typeMatches)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.typeInput.Value() != "thai_restaurant" {
		t.Errorf("type value = %q, want the picked match", m.typeInput.Value())
	}
	if m.focus != focusFilters {
		t.Error("confirming should return to the panel")
	}
}

func TestResultsNavigationUpdatesDetails(t *testing.T) {
	m, _ := newTestModel(nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	resp := &domain.SearchResponse{Places: []domain.Place{
		{ID: "a", DisplayName: &domain.LocalizedText{Text: "First"}},
		{ID: "b", DisplayName: &domain.LocalizedText{Text: "Second"}},
	}}
	m.searchSeq = 1
	m, _ = update(t, m, searchDoneMsg{seq: 1, resp: resp})
	m.setFocus(focusResults)

	m, _ = update(t, m, keyRunes("j"))
	if m.detail == nil || m.detail.ID != "b" {
		t.Error("moving the selection should update the details pane")
	}

	m, _ = update(t, m, keyRunes("k"))
	if m.detail == nil || m.detail.ID != "a" {
		t.Error("moving back should update the details pane")
	}
}

func TestEnterOnResultFetchesDetails(t *testing.T) {
	m, s := newTestModel(nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	resp := &domain.SearchResponse{Places: []domain.Place{{ID: "place-1"}}}
	m.searchSeq = 1
	m, _ = update(t, m, searchDoneMsg{seq: 1, resp: resp})
	m.setFocus(focusResults)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter on a result should fetch details")
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected a batch, got %T", msg)
	}
	var done *detailsDoneMsg
	for _, c := range batch {
		if d, ok := c().(detailsDoneMsg); ok {
			done = &d
			break
		}
	}
	if done == nil {
		t.Fatal("batch should contain the details response")
	}
	if s.details.calls != 1 {
		t.Fatalf("details calls = %d, want 1", s.details.calls)
	}
	if s.details.lastReq.PlaceID != "place-1" || !s.details.lastReq.IncludeReviews {
		t.Errorf("details request = %+v", s.details.lastReq)
	}

	m, _ = update(t, m, *done)
	if m.detail == nil || m.detail.ID != "place-1" {
		t.Error("details response should fill the pane")
	}
	if m.status != "Details loaded." {
		t.Errorf("status = %q", m.status)
	}
}

func TestQuitFromResults(t *testing.T) {
	m, _ := newTestModel(nil)
	m.setFocus(focusResults)

	_, cmd := update(t, m, keyRunes("q"))
	if !isQuit(cmd) {
		t.Error("q from the results list should quit")
	}
}
