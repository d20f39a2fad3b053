package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)
	assert.Equal("[42]", optionalInt.String())

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
	assert.Equal("[-]", optionalString.String())
}

func TestOptionalPointerConversion(t *testing.T) {
	assert := require.New(t)

	assert.False(OptionalFromPointer[string](nil).IsPresent)
	assert.Nil(Optional[string]{}.Pointer())

	value := "cat"
	optional := OptionalFromPointer(&value)
	assert.Equal(NewOptional("cat", true), optional)

	ptr := optional.Pointer()
	assert.NotNil(ptr)
	assert.Equal("cat", *ptr)
	*ptr = "dog"
	assert.Equal("cat", optional.Value)
}

func TestNewEmail(t *testing.T) {
	assert := require.New(t)
	assert.Equal(Email("owner@example.com"), NewEmail("  Owner@Example.COM "))
}
