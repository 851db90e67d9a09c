package sign

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMarkup = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>NAME 1</w:t></w:r></w:p>
<w:p><w:r><w:t>NAME 2</w:t></w:r></w:p>
<w:p><w:r><w:t>NAME 3</w:t></w:r></w:p>
<w:p><w:r><w:t>NAME 4</w:t></w:r></w:p>
</w:body>
</w:document>`

const testStyles = `<?xml version="1.0"?><w:styles xmlns:w="x"><w:style w:styleId="Normal"/></w:styles>`

// buildDocx assembles a minimal docx-shaped archive in memory.
func buildDocx(t *testing.T, markup string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	entries := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", `<?xml version="1.0"?><Types/>`},
		{"_rels/.rels", `<?xml version="1.0"?><Relationships/>`},
		{"word/document.xml", markup},
		{"word/styles.xml", testStyles},
	}
	for _, e := range entries {
		fw, err := w.Create(e.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(e.data))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func readEntry(t *testing.T, doc []byte, name string) []byte {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return data
	}
	t.Fatalf("entry %s not found", name)
	return nil
}

func TestReplaceInDocx(t *testing.T) {
	template := buildDocx(t, testMarkup)

	out, err := ReplaceInDocx(template, []Replacement{
		{"NAME 1", "Amelia"},
		{"NAME 2", "Zack"},
		{"NAME 3", ""},
		{"NAME 4", ""},
	})
	require.NoError(t, err)

	markup := string(readEntry(t, out, "word/document.xml"))
	assert.Contains(t, markup, ">Amelia<")
	assert.Contains(t, markup, ">Zack<")
	assert.NotContains(t, markup, "NAME")

	// Every other entry passes through byte for byte.
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/styles.xml"} {
		assert.Equal(t, readEntry(t, template, name), readEntry(t, out, name), name)
	}

	// The template itself is untouched.
	assert.Contains(t, string(readEntry(t, template, "word/document.xml")), "NAME 1")
}

func TestReplaceInDocxBlankMappingOnlyRemovesTokens(t *testing.T) {
	template := buildDocx(t, testMarkup)

	out, err := ReplaceInDocx(template, []Replacement{
		{"NAME 1", ""}, {"NAME 2", ""}, {"NAME 3", ""}, {"NAME 4", ""},
	})
	require.NoError(t, err)

	got := string(readEntry(t, out, "word/document.xml"))
	want := strings.NewReplacer("NAME 1", "", "NAME 2", "", "NAME 3", "", "NAME 4", "").Replace(testMarkup)
	assert.Equal(t, want, got)
}

func TestReplaceInDocxCrossLineToken(t *testing.T) {
	// A token whose surrounding markup spans lines is still matched, since
	// substitution runs over the whole document string.
	markup := "<w:p>\n<w:r><w:t>NAME 1</w:t></w:r>\n</w:p>"
	template := buildDocx(t, markup)

	out, err := ReplaceInDocx(template, []Replacement{{"NAME 1", "Bo"}})
	require.NoError(t, err)
	assert.Contains(t, string(readEntry(t, out, "word/document.xml")), ">Bo<")
}

func TestReplaceInDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, err := w.Create("mimetype")
	require.NoError(t, err)
	_, err = fw.Write([]byte("application/zip"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = ReplaceInDocx(buf.Bytes(), nil)
	require.Error(t, err)
}

func TestReplaceInDocxGarbage(t *testing.T) {
	_, err := ReplaceInDocx([]byte("not a zip archive"), nil)
	require.Error(t, err)
}

func TestPageDoc(t *testing.T) {
	template := buildDocx(t, testMarkup)

	// Partial page: remaining slots are blanked, not left as placeholders.
	out, err := PageDoc(template, []string{"Amelia"}, 4, "NAME ")
	require.NoError(t, err)

	markup := string(readEntry(t, out, "word/document.xml"))
	assert.Contains(t, markup, ">Amelia<")
	assert.NotContains(t, markup, "NAME")
}
