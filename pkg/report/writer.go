package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chainsafe/bridge-monitor/pkg/transfer"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts csv, json, yaml and yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv", "":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", s)
	}
}

// FormatFromPath infers the format from a file extension, falling back to def.
func FormatFromPath(path string, def Format) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil && filepath.Ext(path) != "" {
		return f
	}
	return def
}

// Write exports records to w.
func Write(w io.Writer, format Format, records []transfer.Record) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, records)
	case FormatJSON:
		return writeJSON(w, records)
	case FormatYAML:
		return writeYAML(w, records)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// WriteFile exports records to path, replacing any existing file.
func WriteFile(path string, format Format, records []transfer.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := Write(f, format, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, records []transfer.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := cw.WriteAll(ToTable(records)); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// Row is a rendered record. It marshals as a JSON object with keys in Header order.
type Row []string

// MarshalJSON implements json.Marshaler.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range Header {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r[i])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(w io.Writer, records []transfer.Record) error {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = ToRow(r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to write json report: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, records []transfer.Record) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, r := range records {
		row := ToRow(r)
		item := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, key := range Header {
			item.Content = append(item.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[i]},
			)
		}
		doc.Content = append(doc.Content, item)
	}
	if len(doc.Content) == 0 {
		doc.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write yaml report: %w", err)
	}
	return enc.Close()
}
