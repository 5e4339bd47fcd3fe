package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the name of the embedded reference content.
const DefaultFile = "landing.yaml"

//go:embed landing.yaml
var embedded embed.FS

var (
	markdown = goldmark.New()
	policy   = bluemonday.UGCPolicy()

	defaultOnce    sync.Once
	defaultLanding *Landing
	defaultErr     error
)

// Default returns the embedded reference content, parsed once.
func Default() (*Landing, error) {
	defaultOnce.Do(func() {
		defaultLanding, defaultErr = Load(embedded, DefaultFile)
	})
	return defaultLanding, defaultErr
}

// LoadFile parses a content file from disk.
func LoadFile(path string) (*Landing, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("content: empty file path")
	}
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Load parses the named YAML document from fsys. Unknown icons or action
// variants fail here rather than at render time.
func Load(fsys fs.FS, name string) (*Landing, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", name, err)
	}
	return Parse(raw)
}

// Parse decodes a content document.
func Parse(raw []byte) (*Landing, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var l Landing
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	body, err := RenderMarkdown(l.Concept.Body)
	if err != nil {
		return nil, fmt.Errorf("content: concept body: %w", err)
	}
	l.Concept.BodyHTML = body
	return &l, nil
}

// RenderMarkdown converts Markdown copy to sanitised HTML.
func RenderMarkdown(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return string(policy.SanitizeBytes(buf.Bytes())), nil
}
