package host

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Manifest is the application's declared usage disclosures, the terminal
// equivalent of an Info.plist.
type Manifest map[string]string

// LoadManifest reads a flat YAML mapping of disclosure key to usage text.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	m := make(Manifest, len(raw))
	for key, value := range raw {
		if value == nil {
			m[key] = ""
			continue
		}
		m[key] = fmt.Sprint(value)
	}
	return m, nil
}

func (m Manifest) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys returns the declared keys in sorted order.
func (m Manifest) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
