// Package bundle packages generated documents into a delivery archive.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/playbarn/partygen/pkg/partygen/models"
)

// Name is the archive file name the delivery bundle ships under.
const Name = "TagX_Output.zip"

// Write streams files into w as a zip archive, preserving their order.
func Write(w io.Writer, files []models.OutputFile) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return fmt.Errorf("bundle %s: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("bundle %s: %w", f.Name, err)
		}
	}
	return zw.Close()
}
