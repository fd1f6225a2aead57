package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Undefined marks a missing cell in CSV input, in addition to the empty string
const Undefined = "?"

var ErrEmptyHeader = errors.New("csv header has no columns")

// ReadCSV parses a CSV stream whose first row holds the column names. A column becomes
// numeric when every defined cell parses as a float, otherwise it is categorical.
// Header names and categorical cells are trimmed and NFC normalized so equal strings
// compare equal.
func ReadCSV(reader io.Reader) (*Table, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}
	cells := make([][]string, len(header))
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", l, err)
		}
		for i, v := range row {
			cells[i] = append(cells[i], strings.TrimSpace(v))
		}
	}

	cols := make([]*Column, 0, len(header))
	for i, name := range header {
		cols = append(cols, parseColumn(Normalize(name), cells[i]))
	}
	return New(cols...)
}

// LoadCSV opens the file at path and parses it with ReadCSV
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing CSV file %s: %w", path, err)
	}
	return t, nil
}

// Normalize trims s and converts it to Unicode NFC, the form column names and
// categorical values are stored in
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func parseColumn(name string, cells []string) *Column {
	nums := make([]float64, len(cells))
	for i, v := range cells {
		if v == "" || v == Undefined {
			nums[i] = math.NaN()
			continue
		}
		// out of range values parse to ±Inf and keep the column numeric
		f, err := strconv.ParseFloat(v, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return categorical(name, cells)
		}
		nums[i] = f
	}
	return NewNumeric(name, nums)
}

func categorical(name string, cells []string) *Column {
	strs := make([]string, len(cells))
	for i, v := range cells {
		if v == Undefined {
			continue
		}
		strs[i] = norm.NFC.String(v)
	}
	return NewCategorical(name, strs)
}
