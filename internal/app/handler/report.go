package handler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"navigator/internal/app/analytics"
	"navigator/internal/app/ds"
	"navigator/internal/app/export"
	"navigator/internal/app/filter"
)

// ReportURLHeader carries the presigned link of an archived report.
const ReportURLHeader = "X-Report-URL"

// ReportArchive stores rendered reports. *storage.ReportArchive implements it.
type ReportArchive interface {
	Store(ctx context.Context, report []byte) (string, error)
	URL(ctx context.Context, name string) (string, error)
}

// Reports renders PDF exports of a filtered view.
type Reports struct {
	Tracker *analytics.Tracker
	// Archive is optional.
	Archive ReportArchive
	Now     func() time.Time
}

type renderedReport struct {
	data []byte
	url  string
}

func (r *Reports) build(ctx context.Context, tools []ds.Tool, state filter.State) (renderedReport, error) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	caption := state.Caption()
	var buf bytes.Buffer
	if err := export.Render(&buf, export.Report{Tools: tools, Caption: caption, Date: now()}); err != nil {
		return renderedReport{}, fmt.Errorf("export %d tools: %w", len(tools), err)
	}
	r.Tracker.ReportExported(len(tools), caption)

	out := renderedReport{data: buf.Bytes()}
	if r.Archive == nil {
		return out, nil
	}

	// The download still succeeds when archiving fails.
	name, err := r.Archive.Store(ctx, out.data)
	if err != nil {
		logrus.WithError(err).Warn("report not archived")
		return out, nil
	}
	if out.url, err = r.Archive.URL(ctx, name); err != nil {
		logrus.WithError(err).WithField("object", name).Warn("report url not available")
	}
	return out, nil
}
