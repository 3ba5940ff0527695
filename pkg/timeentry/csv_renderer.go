package timeentry

import (
	"bytes"
	"encoding/csv"

	log "github.com/sirupsen/logrus"
	"github.com/timelogger/timelogger/internal/rest"
)

var csvHeader = []string{"Date", "Customer", "Project Number", "Project Name", "Hours", "Start Time", "End Time", "Description"}

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

// RenderEntries writes one line per entry in the given order.
func (c *CsvRendererImpl) RenderEntries(entries []TimeEntry) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(csvHeader); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return nil, err
	}
	for _, entry := range entries {
		row := []string{
			entry.Date.Format(rest.DateLayout),
			entry.CustomerName,
			entry.ProjectNumber,
			entry.ProjectName,
			ComputeHours(entry).StringFixed(2),
			FormatTimeOfDay(entry.StartTime),
			FormatTimeOfDay(entry.EndTime),
			entry.Description,
		}
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return nil, err
	}
	return b.Bytes(), nil
}
