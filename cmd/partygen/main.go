// Package main provides the CLI entry point for partygen.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/playbarn/partygen/pkg/partygen"
	"github.com/playbarn/partygen/pkg/partygen/bundle"
	"github.com/playbarn/partygen/pkg/partygen/input"
	"github.com/playbarn/partygen/pkg/partygen/models"
	"github.com/spf13/cobra"
)

var (
	templatesDir string
	outDir       string
	zipPath      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "partygen [bookings.xlsx]",
		Short: "Generate party schedules and name signs from a bookings workbook",
		Long: `partygen reads a bookings export (Book1.xlsx), fills the schedule sheet
template for every party date, builds paginated Tag X and Stompers name
signs, and writes the finished documents out as files or a single zip.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&templatesDir, "templates", "t", "templates", "Directory holding the schedule and sign templates")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write the generated documents into")
	rootCmd.Flags().StringVar(&zipPath, "zip", "", "Write a single zip bundle to this path instead of loose files")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read bookings: %w", err)
	}
	rows, err := input.Rows(data)
	if err != nil {
		return fmt.Errorf("parse bookings: %w", err)
	}

	templates := partygen.NewDirTemplates(templatesDir)
	files, err := partygen.GenerateAll(rows, templates, partygen.DefaultOptions())
	if err != nil {
		return err
	}

	if zipPath != "" {
		return writeBundle(zipPath, files)
	}
	if outDir == "" {
		outDir = "."
	}
	return writeFiles(outDir, files)
}

func writeBundle(path string, files []models.OutputFile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	defer f.Close()
	if err := bundle.Write(f, files); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	fmt.Printf("wrote %d documents to %s\n", len(files), path)
	return nil
}

func writeFiles(dir string, files []models.OutputFile) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, file := range files {
		target := filepath.Join(dir, file.Name)
		if err := os.WriteFile(target, file.Data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", file.Name, err)
		}
	}
	fmt.Printf("wrote %d documents to %s\n", len(files), dir)
	return nil
}
