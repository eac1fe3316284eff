package license

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	mit := Text(MIT, "Ada", "2024")
	assert.True(t, strings.HasPrefix(mit, "MIT License\n"))
	assert.Contains(t, mit, "Copyright (c) 2024 Ada")

	apache := Text(Apache, "Ada", "2024")
	assert.Contains(t, apache, "Version 2.0, January 2004")
	assert.Contains(t, apache, "Copyright 2024 Ada")

	assert.Equal(t, "Copyright (c) 2024 Ada. All rights reserved.", Text("Proprietary", "Ada", "2024"))
	assert.Empty(t, Text(None, "Ada", "2024"))
}
