package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-omg/pdfsearch-cli/backend"
	"github.com/gamma-omg/pdfsearch-cli/history"
)

type fakeGenerator struct {
	count         int
	fileResults   []backend.FileSearchResult
	generated     backend.GeneratedDocument
	generateCalls []backend.GenerateRequest
}

func (f *fakeGenerator) DocumentCount(ctx context.Context) (int, error) {
	return f.count, nil
}

func (f *fakeGenerator) SearchFiles(ctx context.Context, q backend.SearchQuery) ([]backend.FileSearchResult, error) {
	return f.fileResults, nil
}

func (f *fakeGenerator) Generate(ctx context.Context, req backend.GenerateRequest) (*backend.GeneratedDocument, error) {
	f.generateCalls = append(f.generateCalls, req)
	return &f.generated, nil
}

type fakeHistory struct {
	saved []backend.GeneratedDocument
}

func (f *fakeHistory) Save(doc backend.GeneratedDocument) (*history.Record, error) {
	f.saved = append(f.saved, doc)
	return &history.Record{ID: "rec-1", Document: doc}, nil
}

func Test_GenerateView_ZeroDocumentsNeverGenerates(t *testing.T) {
	client := &fakeGenerator{count: 0}
	var out bytes.Buffer
	view := &generateView{log: discardLogger(), out: &out, client: client, history: &fakeHistory{}}

	q := backend.SearchQuery{Query: "cats", SearchType: backend.SearchHybrid}
	require.NoError(t, view.Run(context.Background(), q, backend.DocSummary, ""))

	assert.Empty(t, client.generateCalls)
	assert.Contains(t, out.String(), "Upload a PDF before generating")
}

func Test_GenerateView_NoMatchesNoGeneration(t *testing.T) {
	client := &fakeGenerator{count: 5}
	var out bytes.Buffer
	view := &generateView{log: discardLogger(), out: &out, client: client, history: &fakeHistory{}}

	q := backend.SearchQuery{Query: "nothing matches this"}
	require.NoError(t, view.Run(context.Background(), q, backend.DocReport, ""))

	assert.Empty(t, client.generateCalls)
	assert.Contains(t, out.String(), "No matching documents")
}

func Test_GenerateView_GeneratesAndSavesHistory(t *testing.T) {
	client := &fakeGenerator{
		count: 5,
		fileResults: []backend.FileSearchResult{
			{Source: "pets.pdf", Score: 0.9, Pages: []int{1, 2}, SearchType: "hybrid"},
		},
		generated: backend.GeneratedDocument{
			Content:      "# Cats\nThey sleep.",
			DocumentType: backend.DocSummary,
			SourceFiles:  []string{"pets.pdf"},
			GeneratedAt:  "2026-08-26T10:00:00",
			Query:        "cats",
		},
	}
	hist := &fakeHistory{}

	var out bytes.Buffer
	view := &generateView{log: discardLogger(), out: &out, client: client, history: hist}

	q := backend.SearchQuery{Query: "cats", TopK: 3, SearchType: backend.SearchHybrid}
	require.NoError(t, view.Run(context.Background(), q, backend.DocSummary, "keep it short"))

	require.Len(t, client.generateCalls, 1)
	req := client.generateCalls[0]
	assert.Equal(t, backend.DocSummary, req.DocumentType)
	assert.Equal(t, "cats", req.Query)
	assert.Equal(t, "keep it short", req.CustomPrompt)
	assert.Equal(t, client.fileResults, req.SearchResults)

	require.Len(t, hist.saved, 1)
	assert.Equal(t, client.generated, hist.saved[0])

	assert.Contains(t, out.String(), "# Cats")
	assert.Contains(t, out.String(), "Saved to history as rec-1")
}
