package evalcmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/langbench/internal/eval/dataset"
)

func executeConvert(inPath, outPath, layoutName string) error {
	layout, ok := dataset.LayoutByName(layoutName)
	if !ok {
		return fmt.Errorf("unsupported layout: %s (supported: multi, comment)", layoutName)
	}
	if ext := strings.ToLower(filepath.Ext(outPath)); ext != ".parquet" {
		return fmt.Errorf("output must be a .parquet file, got %s", outPath)
	}

	records, err := dataset.NewLoader(inPath, layout).Load()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", inPath, err)
	}

	if err := dataset.WriteParquet(outPath, records, layout); err != nil {
		return err
	}

	slog.Info("Converted record file", "input", inPath, "output", outPath, "records", len(records))
	fmt.Printf("Converted %d records to %s\n", len(records), outPath)

	return nil
}
