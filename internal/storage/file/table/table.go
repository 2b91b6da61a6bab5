// Package table loads whitespace separated numeric tables.
// The first line of a table is a header and is skipped,
// the last column of every row is the label.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/drakos74/kmeans/internal/model"
	"github.com/rs/zerolog/log"
)

var (
	// ErrFile is returned when the table file cannot be opened or read.
	ErrFile = errors.New("could not read file")
	// ErrFormat is returned for non-numeric or non-finite values and rows of different width.
	ErrFormat = errors.New("invalid format")
)

const maxLine = 16 * 1024 * 1024

// Load reads the dataset from the file at the given path.
func Load(path string) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not open '%s' %s: %w", path, err.Error(), ErrFile)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not load '%s': %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("rows", ds.Len()).
		Int("dim", ds.Dim()).
		Msg("loaded dataset")

	return ds, nil
}

// Read parses a dataset from the given reader.
func Read(r io.Reader) (model.Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	ds := model.Dataset{}
	line := 0
	for scanner.Scan() {
		line++
		// header
		if line == 1 {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return model.Dataset{}, fmt.Errorf("line %d column %d '%s': %w", line, i+1, field, ErrFormat)
			}
			// NaN never equals itself, the training loop would never converge
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return model.Dataset{}, fmt.Errorf("line %d column %d '%s' is not finite: %w", line, i+1, field, ErrFormat)
			}
			row[i] = v
		}
		if err := ds.Add(row); err != nil {
			return model.Dataset{}, fmt.Errorf("line %d %s: %w", line, err.Error(), ErrFormat)
		}
	}
	if err := scanner.Err(); err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", err.Error(), ErrFile)
	}
	return ds, nil
}
