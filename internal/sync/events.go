package sync

import "time"

// EventDatasetReload is broadcast after every successful workbook
// load. Presentation clients re-fetch their view when they see it.
const EventDatasetReload = "dataset.reload"

type DatasetEvent struct {
	Type     string    `json:"type"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}
