package htmlnode

import "strings"

// Prop is a single HTML attribute.
type Prop struct {
	Key   string
	Value string
}

// Attr creates a Prop.
func Attr(key, value string) Prop {
	return Prop{Key: key, Value: value}
}

// Props is an ordered attribute mapping. Serialization follows slice order.
type Props []Prop

// Len returns the number of attributes.
func (p Props) Len() int {
	return len(p)
}

// Get returns the value of the first attribute named key.
func (p Props) Get(key string) (string, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// clone returns a copy that shares no backing array with p.
func (p Props) clone() Props {
	if len(p) == 0 {
		return nil
	}
	out := make(Props, len(p))
	copy(out, p)
	return out
}

// SerializeProps formats props as HTML attribute syntax: name="value" pairs
// joined by a single space. Nil or empty props give the empty string.
// Values are written verbatim.
func SerializeProps(props Props) string {
	if len(props) == 0 {
		return ""
	}
	var b strings.Builder
	writeProps(&b, props)
	return b.String()
}

func writeProps(b *strings.Builder, props Props) {
	for i, prop := range props {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(prop.Key)
		b.WriteString(`="`)
		b.WriteString(prop.Value)
		b.WriteByte('"')
	}
}

// writeOpenTag writes <tag attrs>, with a single space before the first
// attribute and none when props is empty.
func writeOpenTag(b *strings.Builder, tag string, props Props) {
	b.WriteByte('<')
	b.WriteString(tag)
	if len(props) > 0 {
		b.WriteByte(' ')
		writeProps(b, props)
	}
	b.WriteByte('>')
}

func writeCloseTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
