package core

import (
	"bytes"
	"encoding/json"
)

// MetaTag is one entry of MetaTags. Content is nil when the source element
// had no content attribute.
type MetaTag struct {
	Key     string
	Content *string
}

// Value returns the content, or "" when it was absent.
func (t MetaTag) Value() string {
	if t.Content == nil {
		return ""
	}
	return *t.Content
}

// MetaTags is an insertion-ordered map of meta keys to content. Setting an
// existing key replaces its value but keeps its original position.
type MetaTags struct {
	entries []MetaTag
	index   map[string]int
}

// NewMetaTags returns an empty MetaTags.
func NewMetaTags() *MetaTags {
	return &MetaTags{index: make(map[string]int)}
}

// Set stores content under key.
func (m *MetaTags) Set(key string, content *string) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Content = content
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, MetaTag{Key: key, Content: content})
}

// SetString stores a present content value under key.
func (m *MetaTags) SetString(key, content string) {
	m.Set(key, &content)
}

// Lookup returns the content stored under key. The first result is nil when
// the key exists without content.
func (m *MetaTags) Lookup(key string) (*string, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Content, true
}

// Get returns the content stored under key, or "" when missing or absent.
func (m *MetaTags) Get(key string) string {
	content, _ := m.Lookup(key)
	if content == nil {
		return ""
	}
	return *content
}

// Entries returns the tags in first-seen order.
func (m *MetaTags) Entries() []MetaTag {
	if m == nil {
		return nil
	}
	out := make([]MetaTag, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of distinct keys.
func (m *MetaTags) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// MarshalJSON encodes the tags as an object in insertion order; absent
// content becomes null.
func (m *MetaTags) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Content)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
