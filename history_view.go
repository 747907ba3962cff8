package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gamma-omg/pdfsearch-cli/history"
)

type historyView struct {
	out   io.Writer
	store *history.Store
}

func (v *historyView) List() error {
	recs, err := v.store.List()
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}
	if len(recs) == 0 {
		fmt.Fprintln(v.out, "History is empty.")
		return nil
	}

	for _, r := range recs {
		fmt.Fprintf(v.out, "%s  %s  %-12s  %q\n",
			r.ID, r.SavedAt.Format(time.RFC3339), r.Document.DocumentType, r.Document.Query)
	}
	return nil
}

func (v *historyView) Show(id string) error {
	rec, err := v.store.Get(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(v.out, "query:     %s\n", rec.Document.Query)
	fmt.Fprintf(v.out, "type:      %s\n", rec.Document.DocumentType)
	fmt.Fprintf(v.out, "sources:   %s\n", strings.Join(rec.Document.SourceFiles, ", "))
	fmt.Fprintf(v.out, "generated: %s\n\n", rec.Document.GeneratedAt)
	fmt.Fprintln(v.out, rec.Document.Content)
	return nil
}

func (v *historyView) Export(id, outPath string) error {
	rec, err := v.store.Get(id)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, []byte(rec.Document.Content), 0o644); err != nil {
		return fmt.Errorf("failed to export history record: %w", err)
	}

	fmt.Fprintf(v.out, "Exported %s to %s\n", id, outPath)
	return nil
}

func (v *historyView) Delete(id string) error {
	if _, err := v.store.Get(id); err != nil {
		return err
	}
	if err := v.store.Delete(id); err != nil {
		return fmt.Errorf("failed to delete history record: %w", err)
	}

	fmt.Fprintf(v.out, "Deleted %s\n", id)
	return nil
}

func runHistory(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	out := fs.String("o", "generated.md", "Output file for export")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	view := &historyView{out: os.Stdout, store: store}

	sub := "list"
	if fs.NArg() > 0 {
		sub = fs.Arg(0)
	}

	switch sub {
	case "list":
		return view.List()
	case "show", "export", "delete":
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: pdfsearch history %s <id>", sub)
		}
		id := fs.Arg(1)
		switch sub {
		case "show":
			return view.Show(id)
		case "export":
			return view.Export(id, *out)
		default:
			return view.Delete(id)
		}
	default:
		return fmt.Errorf("unknown history command %q (want list, show, export or delete)", sub)
	}
}
