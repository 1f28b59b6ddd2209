package workbook

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"fichahub/internal/credits"
	"fichahub/pkg/models"
)

// Loader is the one-shot fetch-and-classify pipeline. Load fully
// replaces prior state, so re-running it is always safe.
type Loader struct {
	Client        *http.Client
	URL           string
	GeralSheet    string
	AutoriasSheet string
}

func NewLoader(url, geralSheet, autoriasSheet string) *Loader {
	return &Loader{
		Client:        &http.Client{Timeout: 12 * time.Second},
		URL:           url,
		GeralSheet:    geralSheet,
		AutoriasSheet: autoriasSheet,
	}
}

// Load fetches the workbook, extracts both sheets and classifies the
// concatenated rows into a fresh dataset.
func (l *Loader) Load(ctx context.Context) (*models.Dataset, error) {
	wb, err := Fetch(ctx, l.Client, l.URL)
	if err != nil {
		return nil, err
	}

	geral, err := SheetRows(wb, l.GeralSheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", l.GeralSheet, err)
	}
	autorias, err := SheetRows(wb, l.AutoriasSheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", l.AutoriasSheet, err)
	}

	rows := make([]models.RawRow, 0, len(geral)+len(autorias))
	rows = append(rows, geral...)
	rows = append(rows, autorias...)

	ds := credits.Classify(rows)
	log.Printf("[workbook] loaded %d geral + %d autorias rows (%d discipline records)",
		len(geral), len(autorias), len(ds.Disciplines))
	return ds, nil
}
