package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cgm-sim/cgm-sim/sim/cohort"
)

// CSV export of the two in-memory tables. This sits on top of the returned
// dataset; the core engine itself does no I/O.

// WriteGlucoseCSV writes the cohort glucose table with columns
// subject,time_min,glucose_mg_dL,timestamp.
func WriteGlucoseCSV(path string, ds *cohort.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"subject", "time_min", "glucose_mg_dL", "timestamp"}); err != nil {
		return err
	}
	for _, row := range ds.Glucose {
		rec := []string{
			strconv.Itoa(row.Subject),
			strconv.Itoa(row.TimeMin),
			strconv.FormatFloat(row.Glucose, 'f', 3, 64),
			row.Timestamp.Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteEventsCSV writes the cohort event log with columns
// subject,time_min,type,value,timestamp.
func WriteEventsCSV(path string, ds *cohort.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"subject", "time_min", "type", "value", "timestamp"}); err != nil {
		return err
	}
	for _, row := range ds.Events {
		rec := []string{
			strconv.Itoa(row.Subject),
			strconv.Itoa(row.TimeMin),
			string(row.Type),
			strconv.FormatFloat(row.Value, 'f', 3, 64),
			row.Timestamp.Format(time.RFC3339),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
