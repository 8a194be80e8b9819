package hub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edurancehub/hub/storage"
)

func post(id, category, date string) Post {
	return Post{ID: id, Slug: id + "-slug", Overview: Overview{Title: id, Category: category}, Date: date}
}

func ids(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestPublishedStoreListAppendsBuiltin(t *testing.T) {
	ctx := context.Background()
	builtin := []Post{post("b1", "Finance", "March 1, 2024")}
	s := NewPublishedStore(storage.NewMemory(), builtin, testOptions()...)

	assert.Equal(t, []string{"b1"}, ids(s.List(ctx)))

	require.NoError(t, s.Insert(ctx, post("p1", "Health", "March 2, 2024")))
	require.NoError(t, s.Insert(ctx, post("p2", "Health", "March 3, 2024")))
	assert.Equal(t, []string{"p1", "p2", "b1"}, ids(s.List(ctx)))
}

func TestPublishedStoreInsertDoesNotDedup(t *testing.T) {
	ctx := context.Background()
	s := NewPublishedStore(storage.NewMemory(), nil, testOptions()...)
	p := post("p1", "Health", "March 2, 2024")
	require.NoError(t, s.Insert(ctx, p))
	require.NoError(t, s.Insert(ctx, p))
	assert.Len(t, s.List(ctx), 2)
}

func TestSortNewestFirst(t *testing.T) {
	posts := []Post{
		post("old", "", "January 5, 2023"),
		post("bad", "", "not a date"),
		post("new", "", "March 15, 2024"),
		post("tie1", "", "February 1, 2024"),
		post("tie2", "", "February 1, 2024"),
	}
	got := SortNewestFirst(posts)
	assert.Equal(t, []string{"new", "tie1", "tie2", "old", "bad"}, ids(got))
	assert.Equal(t, "old", posts[0].ID, "input must not be reordered")
}

func TestFindBySlug(t *testing.T) {
	posts := []Post{post("a", "", ""), post("b", "", "")}
	p, ok := FindBySlug(posts, "b-slug")
	require.True(t, ok)
	assert.Equal(t, "b", p.ID)
	_, ok = FindBySlug(posts, "nope")
	assert.False(t, ok)
}

func TestFilterByCategoryAndCategories(t *testing.T) {
	posts := []Post{
		post("a", "Health", ""),
		post("b", "health ", ""),
		post("c", "Finance", ""),
		post("d", "", ""),
	}
	assert.Equal(t, []string{"a", "b"}, ids(FilterByCategory(posts, "HEALTH")))
	assert.Equal(t, []string{"Finance", "Health"}, Categories(posts))
}

func TestRelatedPosts(t *testing.T) {
	current := post("cur", "Health", "March 10, 2024")
	posts := []Post{
		post("n1", "Finance", "March 12, 2024"),
		current,
		post("h1", "Health", "March 11, 2024"),
		post("n2", "Tech", "March 9, 2024"),
		post("h2", "Health", "March 1, 2024"),
	}
	assert.Equal(t, []string{"h1", "h2", "n1"}, ids(RelatedPosts(current, posts, 3)))
	assert.Equal(t, []string{"h1"}, ids(RelatedPosts(current, posts, 1)))
	assert.Empty(t, RelatedPosts(current, posts, 0))
	assert.Len(t, RelatedPosts(current, posts, 10), 4)
}

func TestFeaturedPost(t *testing.T) {
	fallback := post("fallback", "Finance", "March 15, 2024")
	fallback.Featured = true

	assert.Equal(t, "fallback", FeaturedPost([]Post{fallback, post("a", "", "March 20, 2024")}, fallback).ID)

	older := post("older", "", "January 1, 2024")
	older.Featured = true
	newer := post("newer", "", "April 1, 2024")
	newer.Featured = true
	got := FeaturedPost([]Post{older, fallback, newer}, fallback)
	assert.Equal(t, "newer", got.ID)
}
