// dxlscan extracts Field_Tx_6 and Deterioration_Tx items from a tree of DXL
// files and writes a detailed report plus a deduplicated value listing per
// item family.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/inspecthq/ferrite/internal/config"
	"github.com/inspecthq/ferrite/internal/core/dxl"
)

func main() {
	dir := flag.String("dir", "RBI_sample", "directory containing DXL files")
	out := flag.String("out", ".", "directory for report files")
	flag.Parse()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		cfg = config.Default()
	}

	scanner := dxl.NewScanner(cfg.Scanner)

	families := []string{"Field_Tx_6", "Deterioration_Tx"}
	foundAny := false
	for _, prefix := range families {
		result, err := scanner.Scan(*dir, prefix)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		if len(result.Files) == 0 {
			continue
		}
		foundAny = true

		fmt.Printf("\nFound %d %s items in %d files.\n", result.ItemCount(), prefix, len(result.Files))
		if len(result.Failures) > 0 {
			fmt.Printf("Skipped %d unreadable files.\n", len(result.Failures))
		}

		slug := strings.ToLower(prefix)
		detailedPath := fmt.Sprintf("%s/%s_results.txt", *out, slug)
		if err := writeReport(detailedPath, func(f *os.File) error {
			return dxl.WriteDetailedReport(f, result)
		}); err != nil {
			log.Fatalf("Error writing %s: %v", detailedPath, err)
		}
		fmt.Printf("Detailed %s results saved to %s\n", prefix, detailedPath)

		values := result.UniqueValues()
		uniquePath := fmt.Sprintf("%s/unique_%s_values.txt", *out, slug)
		if err := writeReport(uniquePath, func(f *os.File) error {
			return dxl.WriteUniqueValues(f, values)
		}); err != nil {
			log.Fatalf("Error writing %s: %v", uniquePath, err)
		}
		fmt.Printf("Found %d unique %s text values\n", len(values), prefix)
		fmt.Printf("Unique %s values saved to %s\n", prefix, uniquePath)
	}

	if !foundAny {
		fmt.Println("No items found in any files.")
	}
}

func writeReport(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
