package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ifelsik/dirlist/internal/report"
	"github.com/ifelsik/dirlist/internal/utils/fileutil"
)

func main() {
	outputDir := flag.String("out", "", "write the listing to a report file in this directory")
	flag.Parse()

	dir := flag.Arg(0)
	if dir == "" {
		dir = "."
	}

	files, err := fileutil.ListRegularFiles(dir)
	if err != nil {
		log.Fatal(err)
	}

	if *outputDir == "" {
		for _, file := range files {
			fmt.Printf("%s\t%s\n", file.Name, file.Path)
		}
		return
	}

	generator := report.NewGenerator()
	outputFile, outputPath, err := generator.CreateOutputFile(*outputDir, dir)
	if err != nil {
		log.Fatal(err)
	}
	defer outputFile.Close()

	generator.WriteListing(outputFile, dir, files)
	log.Printf("Listing written to %s\n", outputPath)
}
