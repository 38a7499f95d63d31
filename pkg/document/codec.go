package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperrors "github.com/matzehuels/mindtree/pkg/errors"
	"github.com/matzehuels/mindtree/pkg/mindmap"
)

// =============================================================================
// Decoding
// =============================================================================

// Decode parses a document without resolving it.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &doc)
		if err == nil {
			if undec := md.Undecoded(); len(undec) > 0 {
				return nil, apperrors.New(apperrors.ErrCodeInvalidDocument, "unknown field %q", undec[0].String())
			}
		}
	default:
		_, err := ParseFormat(string(format))
		return nil, err
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidDocument, err, "decode %s document", format)
	}
	return &doc, nil
}

// Load decodes a document and resolves it into a mindmap.
func Load(data []byte, format Format) (*mindmap.Mindmap, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Mindmap()
}

// ReadFile loads a mindmap from a file, picking the format from its
// extension.
func ReadFile(path string) (*mindmap.Mindmap, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Load(data, format)
}

// =============================================================================
// Encoding
// =============================================================================

// Encode writes m in the given format. Styles are written out in full.
func Encode(m *mindmap.Mindmap, format Format) ([]byte, error) {
	doc := FromMindmap(m)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode yaml")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode toml")
		}
		return buf.Bytes(), nil
	}
	_, err := ParseFormat(string(format))
	return nil, err
}

// WriteFile encodes m into path, picking the format from its extension.
func WriteFile(m *mindmap.Mindmap, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(m, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
