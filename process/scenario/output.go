package scenario

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/point-sim/point-sim/process"
)

// WriteEventsCSV writes an event sequence to path as CSV with a
// time,intensity,mark header. The mark column is empty for unmarked
// events. Callers sort first if they need temporal order on disk.
func WriteEventsCSV(path string, events []process.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "intensity", "mark"}); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range events {
		mark := ""
		if e.HasMark {
			mark = strconv.FormatFloat(e.Mark, 'g', -1, 64)
		}
		row := []string{
			strconv.FormatFloat(e.Time, 'g', -1, 64),
			strconv.FormatFloat(e.Intensity, 'g', -1, 64),
			mark,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write event row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
