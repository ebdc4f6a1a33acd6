package plot

import (
	"context"
	"errors"
	"fmt"

	"github.com/revplot/revplot/engine/plotdata"
	"github.com/revplot/revplot/engine/scm"
	"github.com/revplot/revplot/pkg/logger"
)

// LoadOptions control per-revision extraction.
type LoadOptions struct {
	Fields      []string
	Query       string
	DefaultPlot bool
}

// LoadRevisions produces one merged list of records for datafile across the
// requested revisions, each record tagged with its originating revision.
// Records stay grouped by revision in the requested order. A file missing at
// some revisions is tolerated and logged; missing at all of them escalates to
// NoMetricInHistoryError. Any other failure propagates immediately.
func LoadRevisions(
	ctx context.Context,
	repo scm.Repo,
	datafile string,
	revisions []string,
	opts LoadOptions,
) ([]*plotdata.DataPoint, error) {
	revs, err := defaultRevisions(ctx, repo, revisions)
	if err != nil {
		return nil, err
	}

	merged := make([]*plotdata.DataPoint, 0)
	var missing []*NoMetricOnRevisionError
	for _, rev := range revs {
		records, err := loadRevision(ctx, repo, datafile, rev, opts)
		if err != nil {
			var miss *NoMetricOnRevisionError
			if errors.As(err, &miss) {
				missing = append(missing, miss)
				continue
			}
			return nil, err
		}
		merged = append(merged, records...)
	}

	if len(merged) == 0 && len(missing) > 0 {
		return nil, &NoMetricInHistoryError{Path: datafile, Revisions: revs}
	}
	log := logger.FromContext(ctx)
	for _, miss := range missing {
		log.Warn("metric file not found at revision, it will not be plotted",
			"file", miss.Path, "revision", miss.Revision)
	}
	return merged, nil
}

// defaultRevisions applies the implicit defaulting: zero or one explicit
// revision gets the workspace appended, and a dirty worktree with no explicit
// revisions additionally gets HEAD prepended so the comparison is meaningful.
// An explicit workspace revision is never doubled.
func defaultRevisions(ctx context.Context, repo scm.Repo, revisions []string) ([]string, error) {
	revs := append([]string(nil), revisions...)
	if len(revs) > 1 {
		return revs, nil
	}
	if len(revs) == 1 && revs[0] == scm.WorkspaceRevision {
		return revs, nil
	}
	if len(revs) == 0 {
		dirty, err := repo.IsModified(ctx)
		if err != nil {
			return nil, err
		}
		if dirty {
			revs = append(revs, scm.HeadRevision)
		}
	}
	return append(revs, scm.WorkspaceRevision), nil
}

func loadRevision(
	ctx context.Context,
	repo scm.Repo,
	datafile, rev string,
	opts LoadOptions,
) ([]*plotdata.DataPoint, error) {
	content, err := repo.Resolve(ctx, datafile, rev)
	if err != nil {
		if errors.Is(err, scm.ErrNotFound) {
			return nil, &NoMetricOnRevisionError{Path: datafile, Revision: rev}
		}
		return nil, err
	}

	ds, err := plotdata.ParseFile(datafile, content)
	if err != nil {
		var unsupported *plotdata.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, err
		}
		return nil, fmt.Errorf("at revision '%s': %w", rev, err)
	}
	if err := plotdata.Extract(ds, plotdata.ExtractOptions{Query: opts.Query, Fields: opts.Fields}); err != nil {
		return nil, fmt.Errorf("at revision '%s': %w", rev, err)
	}

	records, fieldNames := ds.Records, ds.FieldNames
	if len(opts.Fields) > 0 {
		records, fieldNames, err = plotdata.ProjectFields(records, fieldNames, opts.Fields)
		if err != nil {
			return nil, fmt.Errorf("at revision '%s': %w", rev, err)
		}
	}
	if opts.DefaultPlot {
		records, _, err = plotdata.DefaultSeries(records, fieldNames)
		if err != nil {
			return nil, fmt.Errorf("at revision '%s': %w", rev, err)
		}
	}

	for _, dp := range records {
		dp.Set(plotdata.RevisionKey, rev)
	}
	return records, nil
}
