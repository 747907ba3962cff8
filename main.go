package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gamma-omg/pdfsearch-cli/backend"
)

const usage = `pdfsearch is a command-line front-end for the PDF search backend.

Usage: pdfsearch [-config file] <command> [args]

Commands:
  upload <file.pdf>...          Upload PDFs to the backend
  search [flags] <query>        Search uploaded documents
  generate [flags] <query>      Generate a summary/report/presentation
  history [list|show|export|delete]
                                Browse generated documents
  documents [list|delete|clear] Manage the uploaded library
  count                         Print the indexed chunk count
  fetch [-o out.pdf] <name>     Download a source PDF
  inspect <file.pdf>            Preview a local PDF before uploading
  watch <dir>                   Auto-upload PDFs dropped into a directory
  mcp                           Serve search as an MCP tool
`

func main() {
	cfgPath := flag.String("config", "cfg/config.yaml", "Configuration file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := readConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		log.Fatalf("failed to open log file: %s", err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewJSONHandler(logFile, nil))
	client := backend.NewClient(cfg.BackendURL, time.Duration(cfg.TimeoutSec)*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	if err := runCommand(ctx, cfg, logger, client, cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, cfg *Config, logger *slog.Logger, client *backend.Client, cmd string, args []string) error {
	switch cmd {
	case "upload":
		return runUpload(ctx, logger, client, args)
	case "search":
		return runSearch(ctx, cfg, logger, client, args)
	case "generate":
		return runGenerate(ctx, cfg, logger, client, args)
	case "history":
		return runHistory(cfg, args)
	case "documents":
		return runDocuments(ctx, logger, client, args)
	case "count":
		return runCount(ctx, logger, client)
	case "fetch":
		return runFetch(ctx, logger, client, args)
	case "inspect":
		return runInspect(args)
	case "watch":
		return runWatch(ctx, cfg, logger, client, args)
	case "mcp":
		srv := NewSearchServer(client, cfg.Results)
		sse := server.NewSSEServer(srv, server.WithBaseURL(fmt.Sprintf("http://%s", cfg.MCPAddr)))
		return sse.Start(cfg.MCPAddr)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
