package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlindqvist/fundscout/internal/pipeline"
	"github.com/jlindqvist/fundscout/internal/search"
	"github.com/jlindqvist/fundscout/internal/types"
)

type stubParser struct {
	criteria *types.Criteria
	err      error
}

func (s *stubParser) ParseCriteria(ctx context.Context, description string) (*types.Criteria, error) {
	return s.criteria, s.err
}

type stubQueries struct{ queries []string }

func (s *stubQueries) GenerateQueries(ctx context.Context, criteria *types.Criteria) ([]string, error) {
	return s.queries, nil
}

type stubProvider struct{ hits []types.RawHit }

func (s *stubProvider) Search(ctx context.Context, query string, opts search.Options) ([]types.RawHit, error) {
	return s.hits, nil
}

type stubExtractor struct{ profile types.Profile }

func (s *stubExtractor) ExtractProfile(ctx context.Context, pageContent, url string) (types.Profile, error) {
	p := s.profile
	p.CampaignURL = url
	return p, nil
}

func testServer(t *testing.T, deps pipeline.Deps) *Server {
	t.Helper()
	srv, err := New(pipeline.New(deps, nil), Config{Port: 0})
	require.NoError(t, err)
	return srv
}

func happyDeps() pipeline.Deps {
	return pipeline.Deps{
		Parser: &stubParser{criteria: &types.Criteria{
			Genders:    []types.Gender{types.GenderFemale},
			Conditions: []string{"diabetes"},
		}},
		Queries: &stubQueries{queries: []string{"diabetes fundraiser"}},
		Provider: &stubProvider{hits: []types.RawHit{
			{URL: "https://www.gofundme.com/f/help-jane", Title: "Help Jane", Content: "snippet"},
		}},
		Extractor: &stubExtractor{profile: types.Profile{
			Name: "Jane", Gender: types.GenderFemale, Conditions: []string{"diabetes"},
		}},
	}
}

func TestHandleSearch_ReturnsSummary(t *testing.T) {
	srv := testServer(t, happyDeps())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/search", "application/json",
		strings.NewReader(`{"description": "women with diabetes"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary types.RunSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 1, summary.TotalResults)
	require.Len(t, summary.Matches, 1)
	assert.Equal(t, "Jane", summary.Matches[0].Profile.Name)
	assert.Equal(t, 100, summary.Weights.Total())
}

func TestHandleSearch_RejectsMissingDescription(t *testing.T) {
	srv := testServer(t, happyDeps())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/search", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/search", "application/json", strings.NewReader(`not json`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleSearch_ParseFailureIsUnprocessable(t *testing.T) {
	deps := happyDeps()
	deps.Parser = &stubParser{err: errors.New("model unavailable")}
	srv := testServer(t, deps)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/search", "application/json",
		strings.NewReader(`{"description": "anyone"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleSearchStream_CompleteIsFinalFrame(t *testing.T) {
	srv := testServer(t, happyDeps())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/search/stream", "application/json",
		strings.NewReader(`{"description": "women with diabetes"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var eventNames []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if name, ok := strings.CutPrefix(line, "event: "); ok {
			eventNames = append(eventNames, name)
		}
	}

	require.NotEmpty(t, eventNames)
	assert.Equal(t, "complete", eventNames[len(eventNames)-1])
	assert.Contains(t, eventNames, "criteria")
	assert.Contains(t, eventNames, "candidatesFound")
	assert.Contains(t, eventNames, "profileScored")
	assert.NotContains(t, eventNames, "error")
}

func TestHandleGetRun_PersistenceDisabled(t *testing.T) {
	srv := testServer(t, happyDeps())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/runs")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t, happyDeps())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
