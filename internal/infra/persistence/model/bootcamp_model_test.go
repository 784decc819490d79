package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestBootcampModel_SlugColumnFitsAnyName(t *testing.T) {
	s, err := schema.Parse(&BootcampModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("slug")
	require.NotNil(t, field)
	// Transliterated names can expand well past the 50 character name limit.
	assert.Equal(t, schema.DataType("text"), field.DataType)
	assert.True(t, field.NotNull)
}
