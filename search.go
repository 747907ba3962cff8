package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gamma-omg/pdfsearch-cli/backend"
	"github.com/gamma-omg/pdfsearch-cli/format"
)

type searcher interface {
	DocumentCount(ctx context.Context) (int, error)
	Search(ctx context.Context, q backend.SearchQuery) ([]backend.SearchResult, error)
	SearchFiles(ctx context.Context, q backend.SearchQuery) ([]backend.FileSearchResult, error)
}

type searchView struct {
	log    *slog.Logger
	out    io.Writer
	client searcher
	color  bool
}

// Run pre-flights the document count; with an empty library the search
// request is never issued and the user gets a local message instead.
func (v *searchView) Run(ctx context.Context, q backend.SearchQuery, byFile bool) error {
	count, err := v.client.DocumentCount(ctx)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if count == 0 {
		fmt.Fprintln(v.out, "No documents uploaded yet. Upload a PDF before searching.")
		return nil
	}

	if byFile {
		return v.renderFiles(ctx, q)
	}
	return v.renderChunks(ctx, q)
}

func (v *searchView) renderChunks(ctx context.Context, q backend.SearchQuery) error {
	results, err := v.client.Search(ctx, q)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	v.log.Info("search completed", "query", q.Query, "type", q.SearchType, "results", len(results))
	if len(results) == 0 {
		fmt.Fprintln(v.out, "No results.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(v.out, "%d. %s %s (score %.3f", i+1, v.typeTag(r.SearchType, q), r.Source, r.Score)
		if r.Page > 0 {
			fmt.Fprintf(v.out, ", p.%d", r.Page)
		}
		fmt.Fprintln(v.out, ")")

		snippet := format.RenderANSI(format.Highlight(r.Content, q.Query), v.color)
		fmt.Fprintf(v.out, "   %s\n", snippet)
	}

	return nil
}

func (v *searchView) renderFiles(ctx context.Context, q backend.SearchQuery) error {
	results, err := v.client.SearchFiles(ctx, q)
	if err != nil {
		return fmt.Errorf("file search failed: %w", err)
	}

	v.log.Info("file search completed", "query", q.Query, "type", q.SearchType, "results", len(results))
	if len(results) == 0 {
		fmt.Fprintln(v.out, "No results.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(v.out, "%d. %s %s (score %.3f, max %.3f, avg %.3f)\n",
			i+1, v.typeTag(r.SearchType, q), r.Source, r.Score, r.MaxScore, r.AvgScore)
		fmt.Fprintf(v.out, "   pages %s, %d chunks\n", format.PageRanges(r.Pages), r.ChunkCount)

		best := format.RenderANSI(format.Highlight(r.BestChunk, q.Query), v.color)
		fmt.Fprintf(v.out, "   %s\n", best)
	}

	return nil
}

// Results echo their search type; fall back to the requested mode when the
// backend omits it.
func (v *searchView) typeTag(got string, q backend.SearchQuery) string {
	t := got
	if t == "" {
		t = q.SearchType
	}
	if t == "" {
		t = backend.SearchHybrid
	}
	return format.SearchTypeTag(t, v.color)
}

func runSearch(ctx context.Context, cfg *Config, log *slog.Logger, client *backend.Client, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	topK := fs.Int("k", cfg.Results, "Maximum number of results")
	searchType := fs.String("type", backend.SearchHybrid, "Search type: semantic, keyword or hybrid")
	byFile := fs.Bool("files", false, "Aggregate results per source file")
	plain := fs.Bool("plain", false, "Disable terminal colours")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return fmt.Errorf("usage: pdfsearch search [flags] <query>")
	}
	if !backend.ValidSearchType(*searchType) {
		return fmt.Errorf("unknown search type %q (want semantic, keyword or hybrid)", *searchType)
	}

	view := &searchView{log: log, out: os.Stdout, client: client, color: !*plain}
	return view.Run(ctx, backend.SearchQuery{Query: query, TopK: *topK, SearchType: *searchType}, *byFile)
}
