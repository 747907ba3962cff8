package main

import (
	"context"
	"flag"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gamma-omg/pdfsearch-cli/backend"
	"github.com/gamma-omg/pdfsearch-cli/preview"
)

type watchUploader interface {
	Upload(ctx context.Context, path string) (*backend.UploadResponse, error)
}

// watcher uploads PDFs dropped into a directory. Uploads are keyed by the
// file's CRC so a rewrite with identical content is not sent twice.
type watcher struct {
	log      *slog.Logger
	out      io.Writer
	client   watchUploader
	debounce time.Duration
	seen     map[string]uint32
}

func newWatcher(log *slog.Logger, out io.Writer, client watchUploader, debounce time.Duration) *watcher {
	return &watcher{
		log:      log,
		out:      out,
		client:   client,
		debounce: debounce,
		seen:     make(map[string]uint32),
	}
}

func (w *watcher) Run(ctx context.Context, dir string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fmt.Fprintf(w.out, "Watching %s for PDFs...\n", dir)

	uploads := make(chan string)
	timers := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".pdf") {
				continue
			}

			// Editors and downloads emit bursts of writes; wait for the
			// file to settle before uploading.
			if t, ok := timers[event.Name]; ok {
				t.Reset(w.debounce)
				continue
			}
			name := event.Name
			timers[name] = time.AfterFunc(w.debounce, func() {
				select {
				case uploads <- name:
				case <-ctx.Done():
				}
			})

		case path := <-uploads:
			delete(timers, path)
			w.uploadChanged(ctx, path)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

func (w *watcher) uploadChanged(ctx context.Context, path string) {
	buf, err := os.ReadFile(path)
	if err != nil {
		w.log.Warn("failed to read watched file", "file", path, "err", err)
		return
	}

	crc := crc32.Checksum(buf, crc32.IEEETable)
	if prev, ok := w.seen[path]; ok && prev == crc {
		return
	}

	if err := preview.CheckPDF(path); err != nil {
		w.log.Warn("skipping watched file", "file", path, "err", err)
		return
	}

	res, err := w.client.Upload(ctx, path)
	if err != nil {
		fmt.Fprintf(w.out, "upload failed for %s: %v\n", filepath.Base(path), err)
		return
	}

	w.seen[path] = crc
	w.log.Info("uploaded watched document", "file", path, "chunks", res.ChunksCreated)
	fmt.Fprintln(w.out, res.Message)
}

func runWatch(ctx context.Context, cfg *Config, log *slog.Logger, client *backend.Client, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: pdfsearch watch <dir>")
	}

	w := newWatcher(log, os.Stdout, client, time.Duration(cfg.WatchDebounceMs)*time.Millisecond)
	return w.Run(ctx, fs.Arg(0))
}
