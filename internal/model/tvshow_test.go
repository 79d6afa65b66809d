package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNewTVShow(t *testing.T) {
	poster := 12
	got := NewTVShow("Dark", "Dark", "https://example.com/dark", "Time travel", &poster, 3)

	want := &TVShow{
		ID:           3,
		Name:         "Dark",
		OriginalName: "Dark",
		Homepage:     "https://example.com/dark",
		Overview:     "Time travel",
		PosterID:     &poster,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tv show mismatch (-want +got):\n%s", diff)
	}
}

func TestTVShowHasID(t *testing.T) {
	var nilShow *TVShow
	assert.False(t, nilShow.HasID())
	assert.False(t, NewTVShow("a", "b", "c", "d", nil, 0).HasID())
	assert.True(t, NewTVShow("a", "b", "c", "d", nil, 1).HasID())
}

func TestTVShowCloneIsIndependent(t *testing.T) {
	poster := 5
	orig := NewTVShow("a", "b", "c", "d", &poster, 1)

	c := orig.Clone()
	c.Name = "changed"
	*c.PosterID = 9

	assert.Equal(t, "a", orig.Name)
	assert.Equal(t, 5, *orig.PosterID)
	assert.Nil(t, (*TVShow)(nil).Clone())
}
