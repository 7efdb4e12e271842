package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Sumatoshi-tech/heapbench/pkg/tracker"
)

// CSVHeader is the column layout of exported trial data, one row per
// measured sort.
var CSVHeader = []string{
	"Size",
	"Pattern",
	"Trial",
	"TimeNanos",
	"TimeMillis",
	"Comparisons",
	"ArrayReads",
	"ArrayWrites",
	"Swaps",
	"HeapifyOps",
}

// WriteCSV writes the run history as CSV.
func WriteCSV(w io.Writer, runs []tracker.Run) error {
	cw := csv.NewWriter(w)

	err := cw.Write(CSVHeader)
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, run := range runs {
		record := []string{
			strconv.Itoa(run.Size),
			run.Pattern,
			strconv.Itoa(run.Trial),
			strconv.FormatInt(run.Elapsed.Nanoseconds(), 10),
			strconv.FormatFloat(float64(run.Elapsed)/float64(time.Millisecond), 'f', 3, 64),
			strconv.FormatUint(run.Comparisons, 10),
			strconv.FormatUint(run.ArrayReads, 10),
			strconv.FormatUint(run.ArrayWrites, 10),
			strconv.FormatUint(run.Swaps, 10),
			strconv.FormatUint(run.HeapifyOps, 10),
		}

		err = cw.Write(record)
		if err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ExportCSV writes the run history to a file at path.
func ExportCSV(path string, runs []tracker.Run) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}

	writeErr := WriteCSV(file, runs)

	closeErr := file.Close()
	if writeErr != nil {
		return writeErr
	}

	if closeErr != nil {
		return fmt.Errorf("close csv file: %w", closeErr)
	}

	return nil
}
