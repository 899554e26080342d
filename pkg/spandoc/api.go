package spandoc

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/xml"
)

// Importer reads WordprocessingML input and converts it to rich text.
// An Importer is safe for concurrent use.
type Importer struct {
	config *Config
	logger *Logger
	cache  *BufferCache
}

// NewImporter creates an importer. A nil config uses the defaults.
func NewImporter(config *Config) (*Importer, error) {
	cfg := NewConfigWithDefaults(config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	im := &Importer{
		config: cfg,
		logger: GetLogger(),
	}
	if cfg.CacheMaxSize > 0 {
		im.cache = NewBufferCache(CacheConfig{
			MaxSize: cfg.CacheMaxSize,
			TTL:     cfg.CacheTTL,
		})
	}
	return im, nil
}

// SetLogger replaces the logger used for diagnostics.
func (im *Importer) SetLogger(logger *Logger) {
	if logger != nil {
		im.logger = logger
	}
}

// Cache returns the importer's buffer cache, or nil when caching is disabled.
func (im *Importer) Cache() *BufferCache {
	return im.cache
}

// ImportFile reads the file at path once and converts it.
func (im *Importer) ImportFile(path string) (*rich.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	defer f.Close()

	return im.importReader(f, path)
}

// ImportReader reads r to the end and converts the content.
func (im *Importer) ImportReader(r io.Reader) (*rich.Buffer, error) {
	return im.importReader(r, "")
}

// ImportBytes converts data.
func (im *Importer) ImportBytes(data []byte) (*rich.Buffer, error) {
	if limit := im.config.MaxInputSize; limit > 0 && int64(len(data)) > limit {
		return nil, NewDocumentError("read", "", ErrInputTooLarge)
	}
	return im.importBytes(data, "")
}

func (im *Importer) importReader(r io.Reader, path string) (*rich.Buffer, error) {
	data, err := readLimited(r, im.config.MaxInputSize)
	if err != nil {
		return nil, NewDocumentError("read", path, err)
	}
	return im.importBytes(data, path)
}

func (im *Importer) importBytes(data []byte, path string) (*rich.Buffer, error) {
	logger := im.logger.WithField("import_id", uuid.NewString())
	if path != "" {
		logger = logger.WithField("path", path)
	}

	var key string
	if im.cache != nil {
		key = CacheKey(data)
		if buf, ok := im.cache.Get(key); ok {
			logger.Debug("cache hit for %s", key)
			return buf, nil
		}
	}

	document, err := extractDocumentXML(data, im.config.MaxInputSize)
	if err != nil {
		return nil, NewDocumentError("extract", path, err)
	}

	tree, err := xml.Load(document)
	if err != nil {
		return nil, NewParseError("malformed markup", err)
	}

	parser := NewParser(WithStrictAttributes(im.config.StrictAttributes), WithLogger(logger))
	buf, err := parser.Parse(tree)
	if err != nil {
		logger.Debug("import failed: %v", err)
		return nil, err
	}

	if im.cache != nil {
		im.cache.Set(key, buf)
	}
	return buf, nil
}

// Import reads and converts the file at path using the global configuration.
func Import(path string) (*rich.Buffer, error) {
	im, err := NewImporter(GetGlobalConfig())
	if err != nil {
		return nil, err
	}
	return im.ImportFile(path)
}

// ImportReader converts the content of r using the global configuration.
func ImportReader(r io.Reader) (*rich.Buffer, error) {
	im, err := NewImporter(GetGlobalConfig())
	if err != nil {
		return nil, err
	}
	return im.ImportReader(r)
}

// ImportString converts an XML string using the global configuration.
func ImportString(s string) (*rich.Buffer, error) {
	return ImportReader(strings.NewReader(s))
}
