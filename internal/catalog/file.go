package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/chronist/daybook/internal/model"
)

const eventDateLayout = "2006-01-02"

// FileSource reads the catalog from a JSON file: an array of records with
// "date" (YYYY-MM-DD), "header" and "description" fields.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

type eventRecord struct {
	Date        string `json:"date"`
	Header      string `json:"header"`
	Description string `json:"description"`
}

func (s *FileSource) Load(_ context.Context) ([]*model.Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %v: %w", s.path, err)
	}

	var records []eventRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal %v: %w", s.path, err)
	}

	events := make([]*model.Event, len(records))
	for i, r := range records {
		date, err := time.Parse(eventDateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %v: bad date %q: %w", i, r.Date, err)
		}

		events[i] = &model.Event{
			Date:        date,
			Header:      r.Header,
			Description: r.Description,
		}
	}

	return events, nil
}
