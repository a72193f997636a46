// Package report writes directory listings to timestamped text files.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ifelsik/dirlist/internal/utils/fileutil"
)

const (
	OutputFilePrefix = "listing_"
	OutputFileSuffix = ".txt"
	TimestampLayout  = "20060102_150405"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// CreateOutputFile creates the report file for listedDir inside outputDir.
// The file name carries the listed directory's base name and a timestamp.
func (g *Generator) CreateOutputFile(outputDir, listedDir string) (*os.File, string, error) {
	timestamp := time.Now().Format(TimestampLayout)
	name := fmt.Sprintf("%s%s_%s%s", OutputFilePrefix, fileutil.Filename(listedDir), timestamp, OutputFileSuffix)
	outputPath := filepath.Join(outputDir, name)

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("create output file: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteListing writes one line per file: the name, a tab, the full path.
func (g *Generator) WriteListing(writer io.Writer, dir string, files []fileutil.FileEntry) {
	fmt.Fprintf(writer, "===== files in %s =====\n", dir)

	for _, file := range files {
		fmt.Fprintf(writer, "%s\t%s\n", file.Name, file.Path)
	}

	fmt.Fprintf(writer, "===== %d file(s) =====\n", len(files))
}
