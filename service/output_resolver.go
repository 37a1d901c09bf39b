package service

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/jsvet/domain"
)

// OutputResolver derives the output stream for each active reporter.
//
// Without an output path template every reporter shares the standard output
// stream; with one, each reporter writes to a file whose name is derived
// from the template and the reporter's format name.
type OutputResolver struct {
	outputPath string
	stdout     io.Writer
}

// NewOutputResolver creates a resolver for the given output path template;
// an empty template routes every reporter to stdout
func NewOutputResolver(outputPath string) *OutputResolver {
	return &OutputResolver{outputPath: outputPath, stdout: os.Stdout}
}

// NewOutputResolverWithStdout creates a resolver with a custom stdout
// stream, used by tests
func NewOutputResolverWithStdout(outputPath string, stdout io.Writer) *OutputResolver {
	return &OutputResolver{outputPath: outputPath, stdout: stdout}
}

// DeriveOutputPath computes the concrete report path for a format name:
// the template's directory and stem joined with the format name as the
// extension. "out/report.txt" with format "json" becomes "out/report.json".
func DeriveOutputPath(template, format string) string {
	dir := filepath.Dir(template)
	base := filepath.Base(template)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+"."+format)
}

// Resolve returns the stream the named reporter should write to. Closing
// the returned stream is always safe: the shared stdout stream is wrapped
// so its Close is a no-op.
func (r *OutputResolver) Resolve(format string) (io.WriteCloser, error) {
	if r.outputPath == "" {
		return nopWriteCloser{r.stdout}, nil
	}

	target := DeriveOutputPath(r.outputPath, format)
	f, err := os.Create(target)
	if err != nil {
		return nil, domain.NewReportOutputError(target, err)
	}
	return f, nil
}

// nopWriteCloser protects the shared stdout stream from being closed by
// the reporting loop
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
