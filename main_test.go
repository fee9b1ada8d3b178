package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHelpFlag(t *testing.T) {
	for _, flag := range []string{"-h", "--help", "-?", "--?"} {
		assert.True(t, isHelpFlag(flag), flag)
	}
	assert.False(t, isHelpFlag("out.inl"))
	assert.False(t, isHelpFlag("-help"))
}
