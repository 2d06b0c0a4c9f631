package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDynamicSegment(t *testing.T) {
	tests := []struct {
		seg  string
		want bool
	}{
		{"123", true},
		{"0", true},
		{"a1b2c3d4-1234-1234-1234-123456789abc", true},
		{"A1B2C3D4-1234-1234-1234-123456789ABC", true},
		{"507f1f77bcf86cd799439011", true},
		{"507F1F77BCF86CD799439011", true},
		{"salary", false},
		{"abc-123", false},
		{"v2", false},
		{"12a", false},
		{"507f1f77bcf86cd79943901", false},
		{"a1b2c3d4-1234-1234-1234-123456789abz", false},
		{"------------------------------------", false},
	}

	for _, tt := range tests {
		t.Run(tt.seg, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDynamicSegment(tt.seg))
		})
	}
}

func TestExtractSearchTerms(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		keyword string
		want    []string
	}{
		{"numeric id dropped", "/user/123", "", []string{"user"}},
		{"numeric id in the middle", "/guild/42/salary", "", []string{"guild", "salary"}},
		{"uuid only", "/a1b2c3d4-1234-1234-1234-123456789abc", "", []string{}},
		{"object id dropped", "/order/507f1f77bcf86cd799439011/detail", "", []string{"order", "detail"}},
		{"keyword tokens appended", "/user/123", "Profile, detail  edit", []string{"user", "profile", "detail", "edit"}},
		{"duplicates collapse case-insensitively", "/Guild/guild", "GUILD", []string{"guild"}},
		{"keyword only", "/42", "salary", []string{"salary"}},
		{"separator-only keyword", "", " , ,, ", []string{}},
		{"root route", "/", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSearchTerms(tt.route, tt.keyword))
		})
	}
}
