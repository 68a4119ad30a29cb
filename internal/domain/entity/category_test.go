package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsValid(), "expected %q to be valid", c)
	}

	assert.False(t, Category("").IsValid())
	assert.False(t, Category("fantasy").IsValid())
	assert.False(t, Category("Romance").IsValid())
}

func TestBookPatch_IsEmpty(t *testing.T) {
	var nilPatch *BookPatch
	assert.True(t, nilPatch.IsEmpty())
	assert.True(t, (&BookPatch{}).IsEmpty())

	title := "New"
	assert.False(t, (&BookPatch{Title: &title}).IsEmpty())
}
