package fx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"github.com/npillmayer/domfx/dom/style"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPlatform is returned for platform profiles which cannot be used.
var ErrInvalidPlatform = errors.New("invalid platform profile")

// Platform describes the host engine.
type Platform struct {
	Name             string `yaml:"name" toml:"name" json:"name,omitempty"`
	LegacyAndroid    bool   `yaml:"legacy-android" toml:"legacy-android" json:"legacy-android,omitempty"`             // CSS animations are unreliable
	EngineVersion    int    `yaml:"engine-version" toml:"engine-version" json:"engine-version,omitempty"`             // 0 = unknown/modern
	MinEngineVersion int    `yaml:"min-engine-version" toml:"min-engine-version" json:"min-engine-version,omitempty"` // engines below this get no effects
	VendorPrefix     string `yaml:"vendor-prefix" toml:"vendor-prefix" json:"vendor-prefix,omitempty"`                // e.g. "-webkit-"
}

// DefaultMinEngineVersion is the minimum engine version supporting effects.
const DefaultMinEngineVersion = 10

// DefaultPlatform describes a modern engine without vendor prefixes.
func DefaultPlatform() Platform {
	return Platform{
		Name:             "default",
		MinEngineVersion: DefaultMinEngineVersion,
	}
}

// SupportsEffects reports whether CSS animations and transitions may be used
// on this platform.
func (pf Platform) SupportsEffects() bool {
	if pf.LegacyAndroid {
		return false
	}
	return pf.EngineVersion == 0 || pf.EngineVersion >= pf.MinEngineVersion
}

// Validate checks a platform profile.
func (pf Platform) Validate() error {
	if pf.VendorPrefix != "" && style.VendorPrefix(pf.VendorPrefix) != pf.VendorPrefix {
		return fmt.Errorf("%w: unknown vendor prefix %q", ErrInvalidPlatform, pf.VendorPrefix)
	}
	if pf.EngineVersion < 0 || pf.MinEngineVersion < 0 {
		return fmt.Errorf("%w: negative engine version", ErrInvalidPlatform)
	}
	return nil
}

// LoadPlatform reads a platform profile from a YAML, TOML or JSON file. The format is
// selected by the file extension. Settings missing from the file keep the
// values of DefaultPlatform.
func LoadPlatform(path string) (Platform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Platform{}, fmt.Errorf("load platform: %w", err)
	}
	var pf Platform
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		pf, err = PlatformFromYAML(data)
	case ".toml":
		pf, err = PlatformFromTOML(data)
	case ".json":
		pf, err = PlatformFromJSON(data)
	default:
		err = fmt.Errorf("%w: unsupported file type %q", ErrInvalidPlatform, ext)
	}
	if err != nil {
		return Platform{}, fmt.Errorf("load platform %s: %w", path, err)
	}
	tracer().Infof("platform %q loaded from %s", pf.Name, path)
	return pf, nil
}

// PlatformFromYAML decodes a platform profile in YAML format.
func PlatformFromYAML(data []byte) (Platform, error) {
	pf := DefaultPlatform()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil && !errors.Is(err, io.EOF) {
		return Platform{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := pf.Validate(); err != nil {
		return Platform{}, err
	}
	return pf, nil
}

// PlatformFromTOML decodes a platform profile in TOML format.
func PlatformFromTOML(data []byte) (Platform, error) {
	pf := DefaultPlatform()
	md, err := toml.Decode(string(data), &pf)
	if err != nil {
		return Platform{}, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Platform{}, fmt.Errorf("%w: unknown key %s", ErrInvalidPlatform, undecoded[0])
	}
	if err := pf.Validate(); err != nil {
		return Platform{}, err
	}
	return pf, nil
}

// PlatformFromJSON decodes a platform profile in JSON format.
func PlatformFromJSON(data []byte) (Platform, error) {
	pf := DefaultPlatform()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&pf); err != nil {
		return Platform{}, fmt.Errorf("decode json: %w", err)
	}
	if err := pf.Validate(); err != nil {
		return Platform{}, err
	}
	return pf, nil
}

// PlatformSchema returns a JSON schema for platform profiles, suitable for
// validating profiles in editors.
func PlatformSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Platform{})
	schema.Title = "domfx platform profile"
	return json.MarshalIndent(schema, "", "  ")
}
