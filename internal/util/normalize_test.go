package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoleName(t *testing.T) {
	assert.Equal(t, "Data Analyst", NormalizeRoleName("  data analyst "))
	assert.Equal(t, "Data Analyst", NormalizeRoleName("DATA ANALYST"))
	assert.Equal(t, "", NormalizeRoleName("   "))
}

func TestNormalizeJobLevel(t *testing.T) {
	assert.Equal(t, "Senior", NormalizeJobLevel("senior"))
	assert.Equal(t, "Mid level", NormalizeJobLevel("MID LEVEL "))
	assert.Equal(t, "", NormalizeJobLevel(""))
}

func TestNormalizeRolePurpose(t *testing.T) {
	assert.Equal(t, "Own the reporting pipelines.", NormalizeRolePurpose("  Own the reporting pipelines. \n"))
}
