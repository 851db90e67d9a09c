package bundle

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/playbarn/partygen/pkg/partygen/models"
)

func TestWrite(t *testing.T) {
	files := []models.OutputFile{
		{Name: "PartySheet_2025-09-13.xlsx", Data: []byte("sheet bytes")},
		{Name: "TagX_Signs_1.docx", Data: []byte("sign bytes")},
		{Name: "Stompers_Signs_1.docx", Data: []byte{}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, files); err != nil {
		t.Fatalf("Write: %v", err)
	}

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reopen bundle: %v", err)
	}
	if len(r.File) != len(files) {
		t.Fatalf("bundle holds %d entries, want %d", len(r.File), len(files))
	}

	for i, want := range files {
		entry := r.File[i]
		if entry.Name != want.Name {
			t.Errorf("entry %d = %q, want %q", i, entry.Name, want.Name)
		}
		rc, err := entry.Open()
		if err != nil {
			t.Fatalf("open %s: %v", entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", entry.Name, err)
		}
		if !bytes.Equal(data, want.Data) {
			t.Errorf("%s content = %q, want %q", entry.Name, data, want.Data)
		}
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len())); err != nil {
		t.Errorf("empty bundle should still be a valid archive: %v", err)
	}
}
