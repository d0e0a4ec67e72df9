package aitable

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlComponent and yamlEntry mirror Component and Entry with yaml tags;
// character sets and the DL data-attribute class are spelled as strings in
// the document, so toEntry converts each decoded entry field by field.
type yamlComponent struct {
	CSet      string   `yaml:"cset"`
	Min       int      `yaml:"min"`
	Max       int      `yaml:"max"`
	Mandatory bool     `yaml:"mandatory"`
	Linters   []string `yaml:"linters,omitempty"`
}

type yamlEntry struct {
	AI           string          `yaml:"ai"`
	FNC1Required bool            `yaml:"fnc1required"`
	DLDataAttr   string          `yaml:"dlDataAttr,omitempty"`
	Components   []yamlComponent `yaml:"components"`
	Attrs        string          `yaml:"attrs,omitempty"`
	DataTitle    string          `yaml:"title,omitempty"`
}

type yamlDocument struct {
	Entries []yamlEntry `yaml:"entries"`
}

// ParseYAML decodes an AI table definition document and compiles it into a
// Table. This is a config-document decoder built on gopkg.in/yaml.v3, not
// a full Syntax Dictionary file loader: the caller owns opening whatever
// io.Reader (file, embedded asset, network response) the document comes
// from.
func ParseYAML(r io.Reader, validLinterName func(string) bool) (*Table, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("aitable: decoding yaml table: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Entries))
	for _, ye := range doc.Entries {
		e, err := ye.toEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return Compile(entries, validLinterName)
}

func (ye yamlEntry) toEntry() (Entry, error) {
	components := make([]Component, 0, len(ye.Components))
	for _, yc := range ye.Components {
		cset, err := parseCharSetName(yc.CSet)
		if err != nil {
			return Entry{}, fmt.Errorf("aitable: AI %q: %w", ye.AI, err)
		}
		components = append(components, Component{
			CSet:      cset,
			Min:       yc.Min,
			Max:       yc.Max,
			Mandatory: yc.Mandatory,
			Linters:   yc.Linters,
		})
	}

	class := DataAttrNone
	switch ye.DLDataAttr {
	case "", "none":
		class = DataAttrNone
	case "allowed":
		class = DataAttrAllowed
	case "unknown":
		class = DataAttrUnknownPlaceholder
	default:
		return Entry{}, fmt.Errorf("aitable: AI %q: unrecognised dlDataAttr %q", ye.AI, ye.DLDataAttr)
	}

	return Entry{
		AI:              ye.AI,
		FNC1Required:    ye.FNC1Required,
		DLDataAttrClass: class,
		Components:      components,
		Attrs:           Attrs{Raw: ye.Attrs},
		DataTitle:       ye.DataTitle,
	}, nil
}

func parseCharSetName(s string) (CharSet, error) {
	switch s {
	case "N":
		return CSetN, nil
	case "X":
		return CSetX, nil
	case "Y":
		return CSetY, nil
	case "Z":
		return CSetZ, nil
	default:
		return 0, fmt.Errorf("unrecognised cset %q", s)
	}
}
