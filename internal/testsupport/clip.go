package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const clipNamespace = "urn:schemas-Professional-Plug-in:P2:ClipMetadata:v3.1"

// Memo renders a Memo element with the given offset and text. Pass "-" as
// offset to leave the Offset element out, and "-" as text to leave Text out.
func Memo(offset, text string) string {
	var b strings.Builder
	b.WriteString("<Memo MemoID=\"m\">")
	if offset != "-" {
		b.WriteString("<Offset>" + offset + "</Offset>")
	}
	if text != "-" {
		b.WriteString("<Text>" + text + "</Text>")
	}
	b.WriteString("</Memo>")
	return b.String()
}

// ClipXML renders a P2 clip metadata document whose MemoList holds memos.
func ClipXML(memos ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no" ?>` + "\n")
	b.WriteString(`<P2Main xmlns="` + clipNamespace + `">`)
	b.WriteString("<ClipContent><GlobalClipID>060A2B340101010501010D4313000000</GlobalClipID>")
	b.WriteString("<Duration>250</Duration><EditUnit>1/25</EditUnit>")
	b.WriteString("<ClipMetadata><DataSource>SHOOTING</DataSource>")
	b.WriteString("<MemoList>")
	for _, memo := range memos {
		b.WriteString(memo)
	}
	b.WriteString("</MemoList>")
	b.WriteString("</ClipMetadata></ClipContent></P2Main>\n")
	return b.String()
}

// ClipXMLWithoutMemoList renders a clip document that has metadata but no
// MemoList element at all.
func ClipXMLWithoutMemoList() string {
	return `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
		`<P2Main xmlns="` + clipNamespace + `"><ClipContent><ClipMetadata>` +
		`<DataSource>SHOOTING</DataSource></ClipMetadata></ClipContent></P2Main>` + "\n"
}

// WriteText writes content to dir/name and returns the full path.
func WriteText(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// NewContentsDir creates <tmp>/CONTENTS/CLIP and returns both paths.
func NewContentsDir(t testing.TB) (contents, clip string) {
	t.Helper()
	contents = filepath.Join(t.TempDir(), "CONTENTS")
	clip = filepath.Join(contents, "CLIP")
	if err := os.MkdirAll(clip, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", clip, err)
	}
	return contents, clip
}
