package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidate()

// newValidate reports fields by their YAML key so messages read like the
// file: source.tree.gamma rather than Source.Tree.Gamma.
func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks that c describes a complete run. Per-field ranges come
// from the struct tags; rules that depend on the source kind are checked here.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Wrapf(ErrInvalidConfig, "validate: %v", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, formatFieldError(e))
		}
		return errors.Wrap(ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	s := c.Source
	switch s.Kind {
	case KindSWC:
		if s.Path == "" {
			return errors.Wrap(ErrInvalidConfig, "source.path is required for swc")
		}
		if s.CommentPrefix == "" {
			return errors.Wrap(ErrInvalidConfig, "source.comment_prefix is empty")
		}
	case KindTree:
		if s.Depth < 1 {
			return errors.Wrapf(ErrInvalidConfig, "source.depth=%d < 1", s.Depth)
		}
		t := s.Tree
		if !(t.Diameter > 0) || !(t.Lambda > 0) || !(t.Gamma > 0) || t.Gamma > 1 {
			return errors.Wrapf(ErrInvalidConfig, "source.tree diameter=%g lambda=%g gamma=%g", t.Diameter, t.Lambda, t.Gamma)
		}
	case KindGrid:
		if s.N < 2 {
			return errors.Wrapf(ErrInvalidConfig, "source.n=%d < 2", s.N)
		}
		if c.Coloring.Reduce {
			return errors.Wrap(ErrInvalidConfig, "coloring.reduce must be false for grid sources")
		}
	case KindPath, KindCycle, KindStar:
		if s.N < 2 {
			return errors.Wrapf(ErrInvalidConfig, "source.n=%d < 2", s.N)
		}
		if s.Spacing == 0 {
			return errors.Wrapf(ErrInvalidConfig, "source.spacing is required for %s", s.Kind)
		}
	}

	if c.Store.Enabled && c.Store.Path == "" && !c.Store.InMemory {
		return errors.Wrap(ErrInvalidConfig, "store.path is required unless store.in_memory")
	}

	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch e.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s (got: %v)", field, e.Param(), e.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s (got: %v)", field, e.Param(), e.Value())
	case "lt":
		return fmt.Sprintf("%s must be below %s (got: %v)", field, e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s (got: %v)", field, e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation '%s' (got: %v)", field, e.Tag(), e.Value())
	}
}
