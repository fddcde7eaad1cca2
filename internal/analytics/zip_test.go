package analytics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    SortDirection
		wantErr bool
	}{
		{"", Desc, false},
		{"desc", Desc, false},
		{"asc", Asc, false},
		{"ASC", Asc, false},
		{" desc ", Desc, false},
		{"up", "", true},
		{"ascending", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortDirection(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidSortDirection))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupByZip_Example(t *testing.T) {
	got := GroupByZip([]string{"10001", "10001", "94110"}, Desc)
	assert.Equal(t, []ZipCount{
		{ZipCode: "10001", OrderCount: 2},
		{ZipCode: "94110", OrderCount: 1},
	}, got)
}

func TestGroupByZip_AscIsReverseOfDesc(t *testing.T) {
	zips := []string{"94110", "10001", "60614", "10001", "60614", "10001", "07029"}
	desc := GroupByZip(zips, Desc)
	asc := GroupByZip(zips, Asc)

	require.Len(t, asc, len(desc))
	assert.ElementsMatch(t, desc, asc)
	assert.Equal(t, int64(len(zips)), Total(desc))
	assert.Equal(t, Total(desc), Total(asc))

	assert.Equal(t, ZipCount{ZipCode: "10001", OrderCount: 3}, desc[0])
	assert.Equal(t, ZipCount{ZipCode: "10001", OrderCount: 3}, asc[len(asc)-1])
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].OrderCount, desc[i].OrderCount)
		assert.LessOrEqual(t, asc[i-1].OrderCount, asc[i].OrderCount)
	}
}

func TestGroupByZip_TiesOrderedByZip(t *testing.T) {
	got := GroupByZip([]string{"94110", "10001", "60614"}, Desc)
	assert.Equal(t, []string{"10001", "60614", "94110"}, zipCodes(got))

	got = GroupByZip([]string{"94110", "10001", "60614"}, Asc)
	assert.Equal(t, []string{"10001", "60614", "94110"}, zipCodes(got))
}

func TestGroupByZip_NoNormalization(t *testing.T) {
	got := GroupByZip([]string{"07029", "7029", "07029 "}, Desc)
	assert.Len(t, got, 3)
}

func TestGroupByZip_Empty(t *testing.T) {
	got := GroupByZip(nil, Desc)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func zipCodes(zc []ZipCount) []string {
	out := make([]string, len(zc))
	for i, z := range zc {
		out[i] = z.ZipCode
	}
	return out
}
