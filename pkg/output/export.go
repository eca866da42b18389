package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/finance-calculators/internal/engine"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"gopkg.in/yaml.v3"
)

var csvHeader = []string{"calculation", "type", "year", "metric", "value"}

// CsvFormat writes results in long form, one metric per row. Summary metrics
// have an empty year column; yearly series follow with the year filled in.
func CsvFormat(w io.Writer, results []engine.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		name := result.Name()
		calcType := result.Input.Type
		for _, row := range summaryRows(result) {
			record := []string{name, calcType, "", row.key, formatValue(row.value)}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV row for %s: %w", name, err)
			}
		}

		series := yearlyRows(result)
		for _, row := range series.rows {
			year := strconv.Itoa(row.year)
			for i, value := range row.values {
				record := []string{name, calcType, year, series.columns[i], formatValue(value)}
				if err := writer.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV row for %s: %w", name, err)
				}
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// JSONSnapshot writes the input and result of every calculation as an
// indented JSON array.
func JSONSnapshot(w io.Writer, results []engine.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot(results)); err != nil {
		return fmt.Errorf("failed to encode JSON snapshot: %w", err)
	}
	return nil
}

// YAMLSnapshot writes the same document as JSONSnapshot in YAML.
func YAMLSnapshot(w io.Writer, results []engine.Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(snapshot(results)); err != nil {
		return fmt.Errorf("failed to encode YAML snapshot: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML snapshot: %w", err)
	}
	return nil
}

func snapshot(results []engine.Result) []engine.Result {
	if results == nil {
		return []engine.Result{}
	}
	return results
}

// Write renders results in the named output format.
func Write(w io.Writer, outputFormat string, results []engine.Result) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, results)
		return nil
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return JSONSnapshot(w, results)
	case constants.OutputFormatYAML:
		return YAMLSnapshot(w, results)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}
