// Package historyfile reads change histories exported from an issue tracker.
// YAML files use snake_case keys; .json files use the tracker's camelCase keys.
package historyfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/leadtime/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Source implements domain.HistorySource interface.
var _ domain.HistorySource = (*Source)(nil)

// Format is the encoding of a history file.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DetectFormat picks the format from the file extension. Anything other
// than .json is read as YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Source loads a history from a file.
type Source struct {
	path   string
	format Format
}

// New creates a Source for path, detecting the format from its extension.
func New(path string) *Source {
	return &Source{path: path, format: DetectFormat(path)}
}

// Path returns the file the source reads.
func (s *Source) Path() string {
	return s.path
}

// Load reads and validates the history file.
func (s *Source) Load(ctx context.Context) (*domain.History, error) {
	if s.path == "" {
		return nil, fmt.Errorf("history path is empty: %w", domain.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("history file %s: %w", s.path, domain.ErrNoHistory)
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	history, err := Decode(bytes.NewReader(data), s.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return history, nil
}

// Decode reads one history document from r and validates it.
func Decode(r io.Reader, format Format) (*domain.History, error) {
	var history domain.History

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&history); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&history); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("empty document: %w", domain.ErrNoHistory)
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown history format %q: %w", format, domain.ErrInvalidArgument)
	}

	if err := validate(&history); err != nil {
		return nil, err
	}
	return &history, nil
}

// validate checks identifiers. Dangling references are left to the assembler,
// which reports them as warnings.
func validate(h *domain.History) error {
	var errs []error

	statusIDs := make(map[string]struct{}, len(h.Statuses))
	for i, s := range h.Statuses {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("statuses[%d]: missing id: %w", i, domain.ErrInvalidArgument))
			continue
		}
		if _, dup := statusIDs[s.ID]; dup {
			errs = append(errs, fmt.Errorf("statuses[%d]: duplicate id %q: %w", i, s.ID, domain.ErrInvalidArgument))
		}
		statusIDs[s.ID] = struct{}{}
	}

	keys := make(map[string]struct{}, len(h.Items))
	for i, item := range h.Items {
		if item.Key == "" {
			errs = append(errs, fmt.Errorf("items[%d]: missing key: %w", i, domain.ErrInvalidArgument))
			continue
		}
		if _, dup := keys[item.Key]; dup {
			errs = append(errs, fmt.Errorf("items[%d]: %s: %w", i, item.Key, domain.ErrDuplicateItem))
		}
		keys[item.Key] = struct{}{}
		if item.Created.IsZero() {
			errs = append(errs, fmt.Errorf("items[%d]: %s: missing created time: %w", i, item.Key, domain.ErrInvalidArgument))
		}
	}

	return errors.Join(errs...)
}
