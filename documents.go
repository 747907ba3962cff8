package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gamma-omg/pdfsearch-cli/backend"
)

type documentManager interface {
	DocumentCount(ctx context.Context) (int, error)
	ListDocuments(ctx context.Context) (*backend.DocumentList, error)
	DeleteDocument(ctx context.Context, filename string) (*backend.DeleteResponse, error)
	ClearDocuments(ctx context.Context) (*backend.ClearResponse, error)
	FetchPDF(ctx context.Context, filename string, w io.Writer) error
}

type documentsView struct {
	log    *slog.Logger
	out    io.Writer
	client documentManager
}

func (v *documentsView) List(ctx context.Context) error {
	list, err := v.client.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	if len(list.Documents) == 0 {
		fmt.Fprintln(v.out, "No documents uploaded.")
		return nil
	}

	for _, d := range list.Documents {
		fmt.Fprintf(v.out, "%s  %d bytes  %d chunks", d.Filename, d.FileSize, d.DocumentChunks)
		if !d.FileExists {
			fmt.Fprint(v.out, "  (file missing on backend)")
		}
		fmt.Fprintln(v.out)
	}
	fmt.Fprintf(v.out, "%d files, %d chunks total\n", list.TotalFiles, list.TotalChunks)
	return nil
}

func (v *documentsView) Count(ctx context.Context) error {
	count, err := v.client.DocumentCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch document count: %w", err)
	}

	fmt.Fprintf(v.out, "%d\n", count)
	return nil
}

func (v *documentsView) Delete(ctx context.Context, filename string) error {
	res, err := v.client.DeleteDocument(ctx, filename)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", filename, err)
	}

	v.log.Info("deleted document", "file", filename, "chunks_removed", res.DocumentsRemoved)
	fmt.Fprintln(v.out, res.Message)
	fmt.Fprintf(v.out, "  chunks removed: %d, remaining: %d\n", res.DocumentsRemoved, res.RemainingDocuments)
	return nil
}

// Clear wipes the whole backend library. The confirm flag keeps a stray
// "pdfsearch documents clear" from destroying everything.
func (v *documentsView) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		fmt.Fprintln(v.out, "This deletes every uploaded document. Re-run with -yes to confirm.")
		return nil
	}

	res, err := v.client.ClearDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear documents: %w", err)
	}

	v.log.Info("cleared all documents", "files_deleted", res.Count)
	fmt.Fprintln(v.out, res.Message)
	return nil
}

func (v *documentsView) Fetch(ctx context.Context, filename, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := v.client.FetchPDF(ctx, filename, f); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("failed to fetch %s: %w", filename, err)
	}

	fmt.Fprintf(v.out, "Saved %s to %s\n", filename, outPath)
	return nil
}

func runDocuments(ctx context.Context, log *slog.Logger, client *backend.Client, args []string) error {
	fs := flag.NewFlagSet("documents", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Confirm destructive operations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view := &documentsView{log: log, out: os.Stdout, client: client}

	sub := "list"
	if fs.NArg() > 0 {
		sub = fs.Arg(0)
	}

	switch sub {
	case "list":
		return view.List(ctx)
	case "delete":
		if fs.NArg() < 2 {
			return fmt.Errorf("usage: pdfsearch documents delete <filename>")
		}
		return view.Delete(ctx, fs.Arg(1))
	case "clear":
		return view.Clear(ctx, *yes)
	default:
		return fmt.Errorf("unknown documents command %q (want list, delete or clear)", sub)
	}
}

func runCount(ctx context.Context, log *slog.Logger, client *backend.Client) error {
	view := &documentsView{log: log, out: os.Stdout, client: client}
	return view.Count(ctx)
}

func runFetch(ctx context.Context, log *slog.Logger, client *backend.Client, args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	out := fs.String("o", "", "Output file (defaults to the source filename)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: pdfsearch fetch [-o out.pdf] <filename>")
	}

	filename := fs.Arg(0)
	outPath := *out
	if outPath == "" {
		outPath = filename
	}

	view := &documentsView{log: log, out: os.Stdout, client: client}
	return view.Fetch(ctx, filename, outPath)
}
