package manifest

import "encoding/json"

// FileName is the name of the mod metadata file.
const FileName = "fabric.mod.json"

// ModInfo holds the fabric.mod.json fields the scaffolder reads back.
type ModInfo struct {
	SchemaVersion int                          `json:"schemaVersion"`
	ID            string                       `json:"id"`
	Version       string                       `json:"version"`
	Name          string                       `json:"name,omitempty"`
	Description   string                       `json:"description,omitempty"`
	Icon          string                       `json:"icon,omitempty"`
	Environment   string                       `json:"environment,omitempty"`
	Entrypoints   map[string][]json.RawMessage `json:"entrypoints,omitempty"`
	Mixins        []json.RawMessage            `json:"mixins,omitempty"`
	Depends       map[string]json.RawMessage   `json:"depends,omitempty"`
}

// Entrypoint is one entry of an entrypoint list. Entries are either a plain
// class name or an object naming a language adapter.
type Entrypoint struct {
	Adapter string `json:"adapter,omitempty"`
	Value   string `json:"value"`
}

// MainEntrypoints returns the "main" entrypoints in declaration order.
func (m *ModInfo) MainEntrypoints() ([]Entrypoint, error) {
	return decodeEntrypoints(m.Entrypoints["main"])
}

// MixinConfigs returns the mixin configuration file names. Object entries
// contribute their "config" field.
func (m *ModInfo) MixinConfigs() ([]string, error) {
	configs := make([]string, 0, len(m.Mixins))
	for _, raw := range m.Mixins {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil {
			configs = append(configs, name)
			continue
		}
		var obj struct {
			Config string `json:"config"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		configs = append(configs, obj.Config)
	}
	return configs, nil
}

func decodeEntrypoints(raws []json.RawMessage) ([]Entrypoint, error) {
	eps := make([]Entrypoint, 0, len(raws))
	for _, raw := range raws {
		var value string
		if err := json.Unmarshal(raw, &value); err == nil {
			eps = append(eps, Entrypoint{Value: value})
			continue
		}
		var ep Entrypoint
		if err := json.Unmarshal(raw, &ep); err != nil {
			return nil, err
		}
		eps = append(eps, ep)
	}
	return eps, nil
}
