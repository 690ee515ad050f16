package nso

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
)

// mapToXML renders a nested map as an XML fragment, one element per
// key. Nested maps become nested elements, slices repeat the parent
// element per item, scalars are formatted and escaped. Keys are
// emitted in sorted order so output is deterministic.
func mapToXML(m map[string]any) (string, error) {
	var b strings.Builder
	if err := writeMap(&b, m); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeMap(b *strings.Builder, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := writeElement(b, k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func writeElement(b *strings.Builder, tag string, value any) error {
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if err := writeElement(b, tag, item); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		b.WriteString("<" + tag + ">")
		if err := writeMap(b, v); err != nil {
			return err
		}
		b.WriteString("</" + tag + ">")
		return nil
	case nil:
		b.WriteString("<" + tag + "></" + tag + ">")
		return nil
	default:
		b.WriteString("<" + tag + ">")
		if err := xml.EscapeText(b, []byte(fmt.Sprint(v))); err != nil {
			return err
		}
		b.WriteString("</" + tag + ">")
		return nil
	}
}
