package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

const promptAny = "any"

// answers are the raw strings collected by the interactive prompts
type answers struct {
	Location  string
	BudgetMin string
	BudgetMax string
	Type      string
	Purpose   string
	Persona   string
	Amenities string
}

func newPrefsCommand(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Build a preferences section interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := askPreferences()
			if err != nil {
				return err
			}

			prefs, err := buildPreferences(a)
			if err != nil {
				return err
			}

			doc, err := renderPreferences(prefs)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			if err := os.WriteFile(out, doc, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			opts.log.Info("preferences written", zap.String("filename", out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write the preferences to (default is stdout)")
	return cmd
}

func validateBudget(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("enter a number or leave empty")
	}
	if v < 0 {
		return errors.New("budget cannot be negative")
	}
	return nil
}

func askPreferences() (answers, error) {
	var a answers
	var err error

	text := func(label string, validate promptui.ValidateFunc) (string, error) {
		p := promptui.Prompt{Label: label, Validate: validate}
		return p.Run()
	}
	choose := func(label string, items []string) (string, error) {
		s := promptui.Select{Label: label, Items: append([]string{promptAny}, items...)}
		_, v, err := s.Run()
		return v, err
	}

	if a.Location, err = text("Preferred city or area", nil); err != nil {
		return a, err
	}
	if a.BudgetMin, err = text("Minimum budget", validateBudget); err != nil {
		return a, err
	}
	if a.BudgetMax, err = text("Maximum budget", validateBudget); err != nil {
		return a, err
	}
	if a.Type, err = choose("Property type", []string{
		string(domain.PropertyTypeRoom), string(domain.PropertyTypePG), string(domain.PropertyTypeHostel),
		string(domain.PropertyTypeFlat), string(domain.PropertyTypeHome),
	}); err != nil {
		return a, err
	}
	if a.Purpose, err = choose("Purpose", []string{string(domain.PurposeRent), string(domain.PurposeSale)}); err != nil {
		return a, err
	}
	if a.Persona, err = choose("Who is looking", []string{
		string(domain.PersonaStudent), string(domain.PersonaWorker), string(domain.PersonaFamily), string(domain.PersonaCouple),
	}); err != nil {
		return a, err
	}
	if a.Amenities, err = text("Required amenities (comma separated)", nil); err != nil {
		return a, err
	}

	return a, nil
}

func parseBudget(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid budget %q: %w", s, err)
	}
	return &v, nil
}

func buildPreferences(a answers) (domain.PreferenceRequest, error) {
	var prefs domain.PreferenceRequest
	var err error

	prefs.PreferredLocation = strings.TrimSpace(a.Location)
	if prefs.BudgetMin, err = parseBudget(a.BudgetMin); err != nil {
		return prefs, err
	}
	if prefs.BudgetMax, err = parseBudget(a.BudgetMax); err != nil {
		return prefs, err
	}
	prefs.PropertyType = domain.ParsePropertyType(a.Type)
	prefs.Purpose = domain.ParsePurpose(a.Purpose)
	prefs.UserProfile = domain.ParsePersona(a.Persona)

	for _, item := range strings.Split(a.Amenities, ",") {
		if item = strings.TrimSpace(item); item != "" {
			prefs.RequiredAmenities = append(prefs.RequiredAmenities, item)
		}
	}

	return prefs, nil
}

// renderPreferences writes prefs as a YAML document with a single
// preferences section, leaving out unset criteria
func renderPreferences(prefs domain.PreferenceRequest) ([]byte, error) {
	fields := map[string]interface{}{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &fields,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(prefs); err != nil {
		return nil, err
	}

	section := yaml.MapSlice{}
	for _, key := range []string{
		"preferred_location", "budget_min", "budget_max", "property_type",
		"purpose", "required_amenities", "user_profile",
	} {
		if v := setValue(fields[key]); v != nil {
			section = append(section, yaml.MapItem{Key: key, Value: v})
		}
	}

	return yaml.Marshal(yaml.MapSlice{{Key: "preferences", Value: section}})
}

// setValue dereferences pointers and drops zero values
func setValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	case string:
		if t == "" {
			return nil
		}
		return t
	case domain.PropertyType:
		if t == domain.PropertyTypeUnknown {
			return nil
		}
		return string(t)
	case domain.Purpose:
		if t == domain.PurposeUnknown {
			return nil
		}
		return string(t)
	case domain.Persona:
		if t == domain.PersonaUnknown {
			return nil
		}
		return string(t)
	case []string:
		if len(t) == 0 {
			return nil
		}
		return t
	default:
		return v
	}
}
