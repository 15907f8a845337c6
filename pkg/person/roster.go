package person

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Format is the encoding of a roster file
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON           // JSON array of persons
	FormatMsgpack        // msgpack array of persons
)

// FormatInfo describes a supported roster format
type FormatInfo struct {
	Format      Format
	Description string
	Extensions  []string
}

var supportedFormats = map[Format]FormatInfo{
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON roster",
		Extensions:  []string{".json"},
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "MessagePack roster",
		Extensions:  []string{".msgpack", ".mp"},
	},
}

var (
	ErrUnknownFormat = errors.New("unknown roster format")
	ErrDuplicateID   = errors.New("duplicate person id")
)

// DetectFormat picks the roster format from the file extension.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// LoadFile reads and validates a roster file.
func LoadFile(filename string) ([]Person, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster %s: %w", filename, err)
	}
	defer file.Close()

	persons, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", filename, err)
	}
	log.Debugf("Loaded %d persons from %s", len(persons), filename)
	return persons, nil
}

// Decode reads a roster in the given format and validates it.
func Decode(r io.Reader, format Format) ([]Person, error) {
	var persons []Person
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&persons); err != nil {
			return nil, err
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&persons); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}
	if err := Validate(persons); err != nil {
		return nil, err
	}
	if len(persons) == 0 {
		log.Warn("Roster is empty, every lookup will miss")
	}
	return persons, nil
}

// Validate checks that ids are unique.
func Validate(persons []Person) error {
	seen := make(map[int]bool, len(persons))
	for _, p := range persons {
		if seen[p.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Encode writes persons in the given format.
func Encode(w io.Writer, format Format, persons []Person) error {
	switch format {
	case FormatJSON:
		return json.NewEncoder(w).Encode(persons)
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(persons)
	}
	return ErrUnknownFormat
}
