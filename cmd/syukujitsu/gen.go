package main

import (
	"fmt"
	"go/format"
	"go/token"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rabitt1ove/syukujitsu"
	"github.com/rabitt1ove/syukujitsu/internal/config"
	"github.com/rabitt1ove/syukujitsu/source"
)

// runGen writes the holiday list as a Go source file so it can be compiled
// into a program instead of read at startup.
func runGen(cfg config.Config, output, pkg, varName string, logger *logrus.Logger) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("gen: invalid package name %q", pkg)
	}
	if !token.IsIdentifier(varName) {
		return fmt.Errorf("gen: invalid variable name %q", varName)
	}

	rows, err := source.ReadFileWith(cfg.CSVPath, cfg.Encoding)
	if err != nil {
		return err
	}
	rows = append(rows, cfg.ExtraRows()...)
	if _, err := syukujitsu.New(rows); err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	src, err := generate(rows, pkg, varName)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return err
	}
	logger.Infof("wrote %d rows to %s", len(rows), output)
	return nil
}

type genRow struct {
	syukujitsu.Row
	year, month, day int
}

// generate produces a formatted Go source file declaring rows as a
// []syukujitsu.Row sorted by date. Rows must already be valid.
func generate(rows []syukujitsu.Row, pkg, varName string) ([]byte, error) {
	sorted := make([]genRow, 0, len(rows))
	for _, r := range rows {
		y, m, d, err := syukujitsu.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		sorted = append(sorted, genRow{Row: r, year: y, month: m, day: d})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].year != sorted[j].year {
			return sorted[i].year < sorted[j].year
		}
		if sorted[i].month != sorted[j].month {
			return sorted[i].month < sorted[j].month
		}
		return sorted[i].day < sorted[j].day
	})

	var b strings.Builder
	b.WriteString("// Code generated by syukujitsu gen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"github.com/rabitt1ove/syukujitsu\"\n\n")
	fmt.Fprintf(&b, "// %s is the national holiday list, one row per line of syukujitsu.csv.\n", varName)
	fmt.Fprintf(&b, "var %s = []syukujitsu.Row{\n", varName)

	currentYear := 0
	for i, r := range sorted {
		if i == 0 || r.year != currentYear {
			if i != 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "\t// %d\n", r.year)
			currentYear = r.year
		}
		fmt.Fprintf(&b, "\t{Date: %q, Label: %q},\n", strings.TrimSpace(r.Date), r.Label)
	}

	b.WriteString("}\n")

	return format.Source([]byte(b.String()))
}
