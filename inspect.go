package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gamma-omg/pdfsearch-cli/preview"
)

const previewChars = 600

type inspectView struct {
	out io.Writer
}

// Run extracts a local PDF's text so the user can check a document before
// uploading it. Everything happens locally.
func (v *inspectView) Run(path string) error {
	info, err := preview.Extract(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(v.out, "%s: %d words\n\n", info.File, info.Words)

	text := strings.TrimSpace(info.Text)
	if len(text) > previewChars {
		text = text[:previewChars] + "..."
	}
	fmt.Fprintln(v.out, text)
	return nil
}

func runInspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: pdfsearch inspect <file.pdf>")
	}

	view := &inspectView{out: os.Stdout}
	return view.Run(fs.Arg(0))
}
