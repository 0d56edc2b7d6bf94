// CSV serialization of a crawl batch. One file per run, named with the run
// timestamp; an empty batch is a caller error, not an empty file.

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-jobmag-scraper/internal/scraper"
)

// TimestampedPath builds <dir>/<prefix>_<YYYYMMDD_HHMMSS>.csv.
func TimestampedPath(dir, prefix string) string {
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", prefix, timestamp))
}

// WriteCSV writes the batch as UTF-8 CSV: a header row from scraper.Headers
// followed by one row per record, in batch order.
func WriteCSV(path string, records []scraper.Record) error {
	if len(records) == 0 {
		return errors.New("no records to write")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(scraper.Headers()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
