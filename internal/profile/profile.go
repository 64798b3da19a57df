// Package profile holds the literal content the viewer presents. The content
// ships embedded in the binary and is validated once at load.
package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultContent []byte

var ErrInvalidProfile = errors.New("invalid profile")

type Skill struct {
	Name  string `yaml:"name" validate:"required"`
	Level int    `yaml:"level" validate:"min=0,max=100"`
}

type SkillGroup struct {
	Title  string  `yaml:"title" validate:"required"`
	Skills []Skill `yaml:"skills" validate:"required,min=1,dive"`
}

type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
}

type Contact struct {
	Icon string `yaml:"icon" validate:"required"`
	Text string `yaml:"text" validate:"required"`
}

type Profile struct {
	Title        string       `yaml:"title" validate:"required"`
	Name         string       `yaml:"name" validate:"required"`
	Headline     string       `yaml:"headline"`
	Avatar       string       `yaml:"avatar"`
	Tagline      string       `yaml:"tagline"`
	About        []string     `yaml:"about" validate:"dive,required"`
	QuickFacts   []string     `yaml:"quick_facts" validate:"dive,required"`
	SkillGroups  []SkillGroup `yaml:"skill_groups" validate:"dive"`
	Projects     []Project    `yaml:"projects" validate:"dive"`
	ContactIntro string       `yaml:"contact_intro"`
	Contacts     []Contact    `yaml:"contacts" validate:"dive"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	defaultOnce    sync.Once
	defaultProfile Profile
	defaultErr     error
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Load decodes YAML content and validates it. Unknown keys are rejected.
func Load(raw []byte) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("%w: decode: %v", ErrInvalidProfile, err)
	}
	if err := Validate(p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func Validate(p Profile) error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Profile.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

// Default returns the embedded profile. The result is decoded once; slices
// are shared, so callers must treat it as read-only.
func Default() (Profile, error) {
	defaultOnce.Do(func() {
		defaultProfile, defaultErr = Load(defaultContent)
	})
	return defaultProfile, defaultErr
}

func MustDefault() Profile {
	p, err := Default()
	if err != nil {
		panic(err)
	}
	return p
}
