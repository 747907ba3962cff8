package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gamma-omg/pdfsearch-cli/backend"
	"github.com/gamma-omg/pdfsearch-cli/preview"
)

type uploader interface {
	Upload(ctx context.Context, path string) (*backend.UploadResponse, error)
}

type uploadView struct {
	log    *slog.Logger
	out    io.Writer
	client uploader
}

// Run uploads each file in turn. Non-PDF files are rejected locally before
// any request is made.
func (v *uploadView) Run(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := preview.CheckPDF(path); err != nil {
			return err
		}

		res, err := v.client.Upload(ctx, path)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

		v.log.Info("uploaded document", "file", path, "chunks", res.ChunksCreated)
		fmt.Fprintln(v.out, res.Message)
		fmt.Fprintf(v.out, "  chunks created: %d, total documents: %d\n", res.ChunksCreated, res.TotalDocuments)
	}

	return nil
}

func runUpload(ctx context.Context, log *slog.Logger, client *backend.Client, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: pdfsearch upload <file.pdf> [more.pdf ...]")
	}

	view := &uploadView{log: log, out: os.Stdout, client: client}
	return view.Run(ctx, fs.Args())
}
