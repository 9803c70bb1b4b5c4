package swc

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRecordTags checks every grammar field uses a keyed parser tag.
func TestRecordTags(t *testing.T) {
	typ := reflect.TypeOf(record{})
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("parser")
		assert.True(t, ok, f.Name)
		assert.Equal(t, "@Number", tag, f.Name)
	}
	assert.NotNil(t, sParseRecord)
}
