package plot

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/revplot/revplot/engine/plotdata"
	"github.com/revplot/revplot/engine/scm"
	"github.com/revplot/revplot/pkg/logger"
)

// Options are the caller-facing knobs of a single plot invocation.
type Options struct {
	// Datafile is the explicit metric file to plot. Optional when the
	// template carries its own data sources.
	Datafile string
	// Template is a template name or path; empty selects the built-in
	// default template.
	Template string
	// Revisions to compare, in caller order. Subject to implicit defaulting.
	Revisions []string
	// Fields narrows records to this set before plotting.
	Fields []string
	// Query is the structural path locating records in nested documents.
	Query string
	// OutPath, when set, is where the filled document is written.
	OutPath string
}

// Result is a filled plot document.
type Result struct {
	Document []byte
	// Path is set when the document was written to storage.
	Path string
}

// Plotter composes the template storage, the revision loader and the
// template engine into the plot operation.
type Plotter struct {
	repo    scm.Repo
	storage *Storage
	fs      afero.Fs
}

// NewPlotter wires a plotter over a repository, template storage and the
// filesystem used for output writes.
func NewPlotter(repo scm.Repo, storage *Storage, fs afero.Fs) *Plotter {
	return &Plotter{repo: repo, storage: storage, fs: fs}
}

// Plot resolves the template, loads every data source it names across the
// requested revisions and returns the filled document.
func (p *Plotter) Plot(ctx context.Context, opts Options) (*Result, error) {
	if opts.Datafile == "" && opts.Template == "" {
		return nil, ErrNoDataNorTemplate
	}
	if err := p.storage.EnsureDefaults(); err != nil {
		return nil, err
	}
	templatePath, err := p.storage.Resolve(opts.Template)
	if err != nil {
		return nil, err
	}
	defaultPlot := templatePath == p.storage.DefaultPath()
	template, err := p.storage.Load(templatePath)
	if err != nil {
		return nil, err
	}

	sources := template.Sources()
	priority := ""
	if opts.Datafile != "" {
		if len(sources) > 1 {
			return nil, &TooManyDataSourcesError{Datafile: opts.Datafile, Sources: sources}
		}
		sources = []string{opts.Datafile}
		priority = opts.Datafile
	}

	data := make(map[string][]*plotdata.DataPoint, len(sources))
	for _, src := range sources {
		records, err := LoadRevisions(ctx, p.repo, src, opts.Revisions, LoadOptions{
			Fields:      opts.Fields,
			Query:       opts.Query,
			DefaultPlot: defaultPlot,
		})
		if err != nil {
			return nil, err
		}
		data[src] = records
	}

	document, err := template.Fill(data, priority)
	if err != nil {
		return nil, err
	}
	result := &Result{Document: document}
	if opts.OutPath != "" {
		if err := afero.WriteFile(p.fs, opts.OutPath, document, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write plot document '%s': %w", opts.OutPath, err)
		}
		result.Path = opts.OutPath
		logger.FromContext(ctx).Debug("plot document written",
			"path", opts.OutPath, "template", template.Name(), "sources", len(sources))
	}
	return result, nil
}
