package spandoc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/ulikunitz/xz"
)

// DocumentPart is the name of the main document part inside a DOCX package.
const DocumentPart = "word/document.xml"

var (
	zipMagic = []byte("PK\x03\x04")
	xzMagic  = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

// DocxReader handles reading parts of a DOCX package
type DocxReader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// NewDocxReader creates a new DOCX reader
func NewDocxReader(r io.ReaderAt, size int64) (*DocxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	dr := &DocxReader{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	// Index all parts by name
	for _, file := range zipReader.File {
		dr.Parts[file.Name] = file
	}

	if _, ok := dr.Parts[DocumentPart]; !ok {
		return nil, ErrNotDocx
	}

	return dr, nil
}

// GetPart retrieves the content of a specific part, reading at most limit
// bytes when limit is positive.
func (dr *DocxReader) GetPart(partName string, limit int64) ([]byte, error) {
	file, ok := dr.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s not found", partName)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", partName, err)
	}
	defer rc.Close()

	content, err := readLimited(rc, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", partName, err)
	}

	return content, nil
}

// GetDocumentXML retrieves the content of word/document.xml
func (dr *DocxReader) GetDocumentXML(limit int64) ([]byte, error) {
	return dr.GetPart(DocumentPart, limit)
}

// ListParts returns the sorted names of all parts in the package
func (dr *DocxReader) ListParts() []string {
	parts := make([]string, 0, len(dr.Parts))
	for name := range dr.Parts {
		parts = append(parts, name)
	}
	sort.Strings(parts)
	return parts
}

// readLimited reads r to the end. With a positive limit, more than limit
// bytes is ErrInputTooLarge.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrInputTooLarge
	}
	return data, nil
}

// extractDocumentXML returns the document.xml bytes held by data. data may be
// the XML itself, a DOCX package, or either of those compressed with xz.
func extractDocumentXML(data []byte, limit int64) ([]byte, error) {
	if bytes.HasPrefix(data, xzMagic) {
		zr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open xz stream: %w", err)
		}
		inner, err := readLimited(zr, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress xz stream: %w", err)
		}
		data = inner
	}

	if bytes.HasPrefix(data, zipMagic) {
		dr, err := NewDocxReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		return dr.GetDocumentXML(limit)
	}

	return data, nil
}
