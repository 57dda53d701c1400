package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/modulegen/compiler/gen"
	"github.com/syssam/modulegen/compiler/load"
)

func TestExitError(t *testing.T) {
	cause := errors.New("boom")
	err := GeneralError("generating module", cause)
	assert.Equal(t, "generating module: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad config", ConfigError("bad config", nil).Error())
}

func TestCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, Code(nil))
	assert.Equal(t, ExitGeneral, Code(errors.New("plain")))
	assert.Equal(t, ExitConfig, Code(ConfigError("x", nil)))
	assert.Equal(t, ExitSchema, Code(fmt.Errorf("wrapped: %w", SchemaError("x", nil))))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", gen.NewValidationError(load.ValidationErrors{{Path: "moduleName", Message: "missing", Severity: load.SeverityError}}), ExitSchema},
		{"schema", gen.NewSchemaError("Comment", "body", "bad", nil), ExitSchema},
		{"field type", &gen.FieldTypeError{Field: "body", Type: "text"}, ExitSchema},
		{"relationship", gen.NewRelationshipError("Comment", "Topic", "topic", "bad", nil), ExitSchema},
		{"config", gen.NewConfigError("Root", "", "empty"), ExitConfig},
		{"registration", gen.NewRegistrationError("a.ts", "bad", nil), ExitGeneral},
		{"other", errors.New("disk full"), ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("generating", tt.err)
			assert.Equal(t, tt.code, Code(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
