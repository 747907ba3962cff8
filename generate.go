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
	"github.com/gamma-omg/pdfsearch-cli/history"
)

type generator interface {
	DocumentCount(ctx context.Context) (int, error)
	SearchFiles(ctx context.Context, q backend.SearchQuery) ([]backend.FileSearchResult, error)
	Generate(ctx context.Context, req backend.GenerateRequest) (*backend.GeneratedDocument, error)
}

type historySaver interface {
	Save(doc backend.GeneratedDocument) (*history.Record, error)
}

type generateView struct {
	log     *slog.Logger
	out     io.Writer
	client  generator
	history historySaver
}

// Run searches file-level matches for the query, hands the top results to
// the generation endpoint and saves the outcome to history.
func (v *generateView) Run(ctx context.Context, q backend.SearchQuery, docType, customPrompt string) error {
	count, err := v.client.DocumentCount(ctx)
	if err != nil {
		return fmt.Errorf("document generation failed: %w", err)
	}
	if count == 0 {
		fmt.Fprintln(v.out, "No documents uploaded yet. Upload a PDF before generating.")
		return nil
	}

	results, err := v.client.SearchFiles(ctx, q)
	if err != nil {
		return fmt.Errorf("document generation failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(v.out, "No matching documents to generate from.")
		return nil
	}

	doc, err := v.client.Generate(ctx, backend.GenerateRequest{
		SearchResults: results,
		DocumentType:  docType,
		Query:         q.Query,
		CustomPrompt:  customPrompt,
	})
	if err != nil {
		return fmt.Errorf("document generation failed: %w", err)
	}

	fmt.Fprintln(v.out, doc.Content)

	rec, err := v.history.Save(*doc)
	if err != nil {
		return fmt.Errorf("generated document could not be saved to history: %w", err)
	}

	v.log.Info("generated document", "type", doc.DocumentType, "query", doc.Query, "id", rec.ID)
	fmt.Fprintf(v.out, "\nSaved to history as %s\n", rec.ID)
	return nil
}

func runGenerate(ctx context.Context, cfg *Config, log *slog.Logger, client *backend.Client, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	docType := fs.String("type", backend.DocSummary, "Document type: summary, report or presentation")
	topK := fs.Int("k", cfg.Results, "Maximum number of source files")
	searchType := fs.String("search", backend.SearchHybrid, "Search type used to pick sources")
	prompt := fs.String("prompt", "", "Extra instructions for the generator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return fmt.Errorf("usage: pdfsearch generate [flags] <query>")
	}
	if !backend.ValidDocumentType(*docType) {
		return fmt.Errorf("unknown document type %q (want summary, report or presentation)", *docType)
	}
	if !backend.ValidSearchType(*searchType) {
		return fmt.Errorf("unknown search type %q (want semantic, keyword or hybrid)", *searchType)
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	view := &generateView{log: log, out: os.Stdout, client: client, history: store}
	return view.Run(ctx, backend.SearchQuery{Query: query, TopK: *topK, SearchType: *searchType}, *docType, *prompt)
}
