package dxl

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteDetailedReport renders the per-file listing: a header and divider per
// file, one "item: text" line per item each followed by a blank line, and a
// two-blank-line block between file sections. Files and items are sorted for
// a stable rendering.
func WriteDetailedReport(w io.Writer, result *Result) error {
	fileNames := make([]string, 0, len(result.Files))
	for name := range result.Files {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	for _, fileName := range fileNames {
		items := result.Files[fileName]

		if _, err := fmt.Fprintf(w, "File: %s\n%s\n", fileName, strings.Repeat("-", 50)); err != nil {
			return err
		}

		itemNames := make([]string, 0, len(items))
		for name := range items {
			itemNames = append(itemNames, name)
		}
		sort.Strings(itemNames)

		for _, itemName := range itemNames {
			if _, err := fmt.Fprintf(w, "%s: %s\n\n", itemName, items[itemName]); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteUniqueValues renders one value per line.
func WriteUniqueValues(w io.Writer, values []string) error {
	for _, value := range values {
		if _, err := fmt.Fprintf(w, "%s\n", value); err != nil {
			return err
		}
	}
	return nil
}
