package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases and trims", in: "  Polo Shirt ", want: "polo shirt"},
		{name: "strips parenthetical", in: "Polo Shirt (Male)", want: "polo shirt"},
		{name: "collapses whitespace", in: "PE   Jogging\tPants", want: "pe jogging pants"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ItemKey(tt.in))
		})
	}
}

func TestSameItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{a: "Jersey", b: "jersey", want: true},
		{a: "Polo Shirt (Female)", b: "polo shirt", want: true},
		{a: "polo shirt", b: "Polo Shirt (Male)", want: true},
		{a: "Polo Shirt (Male)", b: "polo  shirt (male)", want: true},
		{a: "Polo Shirt (Male)", b: "Polo Shirt (Female)", want: false},
		{a: "Jersey", b: "Jersey Shorts", want: false},
		{a: "", b: "Jersey", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SameItem(tt.a, tt.b))
		})
	}
}

func TestQualifierAndSameName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "male", Qualifier("Polo Shirt ( Male )"))
	assert.Equal(t, "", Qualifier("Jersey"))
	assert.True(t, SameName("Polo Shirt (Male)", " polo shirt  (male)"))
	assert.False(t, SameName("Polo Shirt (Male)", "Polo Shirt"))
	assert.False(t, SameName("", ""))
}

func TestSameSizeAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{a: "M", b: "Medium", want: true},
		{a: "medium", b: "MED", want: true},
		{a: "Small (S)", b: "S", want: true},
		{a: "Small (S)", b: "small", want: true},
		{a: "XS", b: "extra small", want: true},
		{a: "2XL", b: "XXL", want: true},
		{a: "3xl", b: "XXXL", want: true},
		{a: "S", b: "XS", want: false},
		{a: "M", b: "L", want: false},
		{a: "Size 8", b: "size 8", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SameSizeAlias(tt.a, tt.b))
			assert.Equal(t, tt.want, SameSizeAlias(tt.b, tt.a))
		})
	}
}

func TestFindSize(t *testing.T) {
	t.Parallel()

	sizes := []string{"Small (S)", "Medium (M)", "Large", "XL", "Size 10"}

	tests := []struct {
		name     string
		sizes    []string
		want     string
		wantIdx  int
		wantPass Pass
	}{
		{name: "exact", sizes: sizes, want: "large", wantIdx: 2, wantPass: PassExact},
		{name: "stripped", sizes: sizes, want: "Small", wantIdx: 0, wantPass: PassStripped},
		{name: "parenthetical alias", sizes: sizes, want: "S", wantIdx: 0, wantPass: PassAlias},
		{name: "alias", sizes: sizes, want: "extra large", wantIdx: 3, wantPass: PassAlias},
		{name: "substring", sizes: sizes, want: "10", wantIdx: 4, wantPass: PassSubstring},
		{name: "no match", sizes: sizes, want: "XXL", wantIdx: -1, wantPass: PassNone},
		{name: "single letter never substring matches", sizes: []string{"XS"}, want: "S", wantIdx: -1, wantPass: PassNone},
		{name: "unsized single variant", sizes: []string{"Free Size"}, want: "", wantIdx: 0, wantPass: PassExact},
		{name: "unsized among sizes", sizes: []string{"S", ""}, want: " ", wantIdx: 1, wantPass: PassExact},
		{name: "unsized ambiguous", sizes: []string{"S", "M"}, want: "", wantIdx: -1, wantPass: PassNone},
		{name: "empty list", sizes: nil, want: "M", wantIdx: -1, wantPass: PassNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			idx, pass := FindSize(tt.sizes, tt.want)
			assert.Equal(t, tt.wantIdx, idx)
			assert.Equal(t, tt.wantPass, pass)
		})
	}
}
