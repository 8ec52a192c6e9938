package cli

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

// Input is the document scorectl commands read. Any section may be absent;
// each command checks for the ones it needs.
type Input struct {
	Property    *domain.PropertyFacts     `json:"property"`
	Owner       *domain.OwnerFacts        `json:"owner"`
	Preferences *domain.PreferenceRequest `json:"preferences"`
}

var (
	errNoProperty    = errors.New("input has no property section")
	errNoOwner       = errors.New("input has no owner section")
	errNoPreferences = errors.New("input has no preferences section")
)

// LoadInput reads a YAML or JSON input file
func LoadInput(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", path, err)
	}

	in, err := DecodeInput(data)
	if err != nil {
		return nil, fmt.Errorf("decoding input %s: %w", path, err)
	}
	return in, nil
}

// DecodeInput parses YAML (JSON being a subset of it) and maps the generic
// tree onto the domain types through their json tags. Numbers written as
// strings are accepted. Counts such as bhk must be whole numbers.
func DecodeInput(data []byte) (*Input, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var in Input
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.DecodeHookFuncType(rejectFractionalInts),
		Result:           &in,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	in.normalize()
	return &in, nil
}

// rejectFractionalInts stops mapstructure from truncating 1.5 to 1 when a
// float lands in an integer field
func rejectFractionalInts(from, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, fmt.Errorf("expected a whole number, got %v", f)
	}
	return data, nil
}

// normalize maps free-text enums onto their closed sets so scorers see the
// same values the HTTP layer would hand them
func (in *Input) normalize() {
	if p := in.Property; p != nil {
		p.Type = domain.ParsePropertyType(string(p.Type))
		p.Purpose = domain.ParsePurpose(string(p.Purpose))
	}
	if pr := in.Preferences; pr != nil {
		pr.PropertyType = domain.ParsePropertyType(string(pr.PropertyType))
		pr.Purpose = domain.ParsePurpose(string(pr.Purpose))
		pr.UserProfile = domain.ParsePersona(string(pr.UserProfile))
	}
}
