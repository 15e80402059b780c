package submission

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/searchgrade/internal/ctxlog"
)

// Format is a manifest encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

var validate = validator.New()

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Load reads and decodes the manifest at path.
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("submission: reading %s: %w", path, err)
	}
	logger.Debug("Loading manifest.", "path", path, "format", format, "bytes", len(src))
	return Decode(src, path, format)
}

// Decode parses src in the given format. filename is used in diagnostics.
// Only the roster itself is validated here; student entries are validated
// by Build so that their defects stay local.
func Decode(src []byte, filename string, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(src, &m); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, filename, err)
		}
	case FormatHCL:
		file, diags := hclparse.NewParser().ParseHCL(src, filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidManifest, filename, diags)
		}
		if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidManifest, filename, diags)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, filename, err)
	}

	return &m, nil
}
