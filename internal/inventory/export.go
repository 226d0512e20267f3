package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format selects the export file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	filePrefix   = "84_takeoff_"
	fallbackName = "export"
	SheetName    = "Takeoff"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Headers are the column titles of every export.
var Headers = []string{"Address", "Window Spec", "Door Spec", "Qty", "Width", "Height", "Type", "Tempered", "Drywall", "Transom"}

// Rows renders items as export records without the header row.
func Rows(job JobInfo, items []Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			job.Address,
			job.WindowSpec,
			job.DoorSpec,
			strconv.Itoa(it.Qty),
			inches(it.Width),
			inches(it.Height),
			it.Type,
			yesNo(it.Tempered),
			yesNo(it.Drywall),
			it.Transom,
		})
	}
	return rows
}

func inches(v int) string {
	return strconv.Itoa(v) + `"`
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

// WriteCSV writes the header and one record per item.
func WriteCSV(w io.Writer, job JobInfo, items []Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(Rows(job, items)); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// WriteXLSX writes the same table as WriteCSV to a single worksheet.
// Quantities are stored as numbers.
func WriteXLSX(w io.Writer, job JobInfo, items []Item) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	for i, rec := range Rows(job, items) {
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		row[3] = items[i].Qty
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// FileName returns the export file name for an address. Path separators and
// surrounding whitespace are removed from the address.
func FileName(address string, format Format) string {
	name := strings.TrimSpace(address)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		name = fallbackName
	}
	return filePrefix + name + "." + string(format)
}

// Export writes items to dir in the given format and returns the file path.
func Export(dir string, format Format, job JobInfo, items []Item) (string, error) {
	var write func(io.Writer, JobInfo, []Item) error
	switch format {
	case FormatCSV:
		write = WriteCSV
	case FormatXLSX:
		write = WriteXLSX
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName(job.Address, format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export: %w", err)
	}
	if err := write(f, job, items); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}
	return path, nil
}
