package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/endowment-irr/internal/domain"
)

// lookupFormatter resolves a format name or returns an error listing the choices.
func lookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render formats the report with the named formatter.
func Render(report *domain.ProjectionReport, format string) ([]byte, error) {
	f, err := lookupFormatter(format)
	if err != nil {
		return nil, err
	}
	return f.Format(report)
}

// GenerateReport writes the report to a timestamped file in dir. The special
// format "all" writes the console, detailed CSV and HTML variants.
func GenerateReport(report *domain.ProjectionReport, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var written []string
		for _, name := range []string{"console", "detailed-csv", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), report, dir)
			if err != nil {
				return written, err
			}
			written = append(written, path)
		}
		return written, nil
	}
	f, err := lookupFormatter(format)
	if err != nil {
		return nil, err
	}
	path, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveReport writes the formatted report to an explicit path.
func SaveReport(report *domain.ProjectionReport, format, filename string) error {
	data, err := Render(report, format)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

