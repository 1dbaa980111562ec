package parley

import (
	"strings"
	"time"
)

const (
	exportFileLayout = "2006-01-02_15-04-05"
	exportBodyLayout = "2006-01-02 15:04"
)

// ExportFile is a rendered Markdown document and its suggested filename.
type ExportFile struct {
	Filename string
	Content  string
}

// Exporter renders a conversation as Markdown.
type Exporter struct {
	labels Labels
	now    func() time.Time
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithClock sets the time source. Default is time.Now.
func WithClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) { e.now = now }
}

// NewExporter creates an Exporter using the given labels.
func NewExporter(labels Labels, opts ...ExporterOption) *Exporter {
	e := &Exporter{labels: labels, now: time.Now}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Export renders messages in order. It fails with ErrNothingToExport when
// messages is empty.
func (e *Exporter) Export(messages []Message) (ExportFile, error) {
	if len(messages) == 0 {
		return ExportFile{}, ErrNothingToExport
	}
	now := e.now()
	stamp := now.Format(exportBodyLayout)

	var b strings.Builder
	b.WriteString("# " + e.labels.ExportTitle + " - " + stamp + "\n\n")
	for _, m := range messages {
		b.WriteString("## " + e.labels.Role(m.Role) + "\n\n")
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}
	b.WriteString("---\n")
	b.WriteString(e.labels.CreatedAt + ": " + stamp + "\n")

	return ExportFile{
		Filename: e.labels.ExportTitle + "_" + now.Format(exportFileLayout) + ".md",
		Content:  b.String(),
	}, nil
}
