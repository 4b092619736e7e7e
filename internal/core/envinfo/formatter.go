package envinfo

import (
	"fmt"
	"sort"
)

// Section is one source bucket of the rendered env info
type Section struct {
	Header string
	Fields []Field
}

// Group buckets the fields by source label. Buckets keep the fixed tier order,
// empty buckets are dropped, and fields inside a bucket are sorted by key.
func Group(info ResolvedConfigInfo) []Section {
	buckets := make(map[Source][]Field, len(sourceOrder))
	for _, f := range info.Fields {
		buckets[f.Source] = append(buckets[f.Source], f)
	}

	sections := make([]Section, 0, len(sourceOrder))
	for _, src := range sourceOrder {
		fields := buckets[src]
		if len(fields) == 0 {
			continue
		}
		sorted := make([]Field, len(fields))
		copy(sorted, fields)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

		sections = append(sections, Section{
			Header: src.Label(info.UsedConfigPath),
			Fields: sorted,
		})
	}
	return sections
}

// FooterLine identifies the config file the info was resolved against.
func FooterLine(info ResolvedConfigInfo) string {
	return fmt.Sprintf("config file: %s", info.UsedConfigPath)
}

// HeaderLine renders a section header.
func HeaderLine(s Section) string {
	return s.Header + ":"
}

// FieldLine renders one indented key/value line.
func FieldLine(f Field) string {
	return fmt.Sprintf("  %s: %s", f.Key, f.Value)
}

// Lines renders the info as plain terminal lines.
func Lines(info ResolvedConfigInfo) []string {
	var lines []string
	for _, s := range Group(info) {
		lines = append(lines, HeaderLine(s))
		for _, f := range s.Fields {
			lines = append(lines, FieldLine(f))
		}
	}
	return append(lines, FooterLine(info))
}
