package hub

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edurancehub/hub/storage"
)

type desk struct {
	store     *faultyStorage
	drafts    *DraftStore
	posts     *PublishedStore
	publisher *Publisher
}

func newDesk() *desk {
	fs := &faultyStorage{Storage: storage.NewMemory()}
	opts := testOptions()
	d := &desk{store: fs}
	d.drafts = NewDraftStore(fs, opts...)
	d.posts = NewPublishedStore(fs, nil, opts...)
	d.publisher = NewPublisher(d.drafts, d.posts, opts...)
	return d
}

func TestPublishMovesDraftToPosts(t *testing.T) {
	ctx := context.Background()
	d := newDesk()
	draft := mustSaveDraft(t, d.drafts, Draft{Overview: validOverview(), Content: validContent()})

	post, err := d.publisher.Publish(ctx, draft)
	require.NoError(t, err)

	assert.Equal(t, draft.ID, post.ID)
	assert.Equal(t, "my-first-post", post.Slug)
	assert.Equal(t, "March 20, 2024", post.Date)

	posts := d.posts.List(ctx)
	require.Len(t, posts, 1)
	assert.Equal(t, draft.Title, posts[0].Title)
	assert.Equal(t, draft.Description, posts[0].Description)
	assert.Equal(t, draft.Tags, posts[0].Tags)
	assert.Empty(t, d.drafts.List(ctx))
}

func TestPublishInvalidContentChangesNothing(t *testing.T) {
	ctx := context.Background()
	d := newDesk()
	draft := mustSaveDraft(t, d.drafts, Draft{
		Overview: validOverview(),
		Content:  []ContentBlock{{Kind: KindHeading, Text: "Intro"}, {Kind: KindParagraph, Text: " "}},
	})

	_, err := d.publisher.Publish(ctx, draft)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, []string{"Content item 2: Content is required"}, verrs.Messages())

	assert.Len(t, d.drafts.List(ctx), 1)
	assert.Empty(t, d.posts.List(ctx))
}

func TestPublishRoundTrip(t *testing.T) {
	ctx := context.Background()
	d := newDesk()

	draft := mustSaveDraft(t, d.drafts, Draft{Overview: Overview{Title: "My First Post"}})
	drafts := d.drafts.List(ctx)
	require.Len(t, drafts, 1)
	assert.Equal(t, "My First Post", drafts[0].Title)

	draft.Content = []ContentBlock{
		{Kind: KindHeading, Text: "Getting started"},
		{Kind: KindParagraph, Text: words(220)},
	}
	draft = mustSaveDraft(t, d.drafts, draft)

	_, err := d.publisher.Publish(ctx, draft)
	require.NoError(t, err)

	posts := d.posts.List(ctx)
	require.Len(t, posts, 1)
	assert.Equal(t, "2 min read", posts[0].ReadTime)
	assert.Empty(t, d.drafts.List(ctx))
}

func TestPublishInsertFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	d := newDesk()
	draft := mustSaveDraft(t, d.drafts, Draft{Overview: validOverview(), Content: validContent()})

	d.store.failSet = true
	d.store.failSetKey = PostsKey
	_, err := d.publisher.Publish(ctx, draft)
	require.ErrorIs(t, err, errBoom)

	assert.Len(t, d.drafts.List(ctx), 1)
	assert.Empty(t, d.posts.List(ctx))
}

func TestPublishDraftDeleteFailure(t *testing.T) {
	ctx := context.Background()
	d := newDesk()
	draft := mustSaveDraft(t, d.drafts, Draft{Overview: validOverview(), Content: validContent()})

	d.store.failSet = true
	d.store.failSetKey = DraftsKey
	post, err := d.publisher.Publish(ctx, draft)
	require.ErrorIs(t, err, ErrDraftNotRemoved)
	assert.Equal(t, draft.ID, post.ID)

	assert.Len(t, d.posts.List(ctx), 1)
	assert.Len(t, d.drafts.List(ctx), 1)
}

func TestPublishUnsavedDraft(t *testing.T) {
	ctx := context.Background()
	d := newDesk()
	mustSaveDraft(t, d.drafts, Draft{ID: "other"})

	post, err := d.publisher.Publish(ctx, Draft{Overview: validOverview(), Content: validContent()})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Len(t, d.drafts.List(ctx), 1, "unrelated drafts stay")
}

func TestPublishSlugRules(t *testing.T) {
	ctx := context.Background()
	d := newDesk()

	o := validOverview()
	kept, err := d.publisher.Publish(ctx, Draft{Slug: "custom-slug", Overview: o, Content: validContent()})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", kept.Slug)

	o.Title = "!!!"
	fallback, err := d.publisher.Publish(ctx, Draft{ID: "id-123", Overview: o, Content: validContent()})
	require.NoError(t, err)
	assert.Equal(t, "id-123", fallback.Slug)
}

func TestPublishReadTime(t *testing.T) {
	ctx := context.Background()
	d := newDesk()

	o := validOverview()
	o.ReadTime = "45 min read"
	estimated, err := d.publisher.Publish(ctx, Draft{Overview: o, Content: validContent()})
	require.NoError(t, err)
	assert.Equal(t, "1 min read", estimated.ReadTime)

	manual, err := d.publisher.Publish(ctx, Draft{Overview: o, Content: validContent(), ReadTimeManual: true})
	require.NoError(t, err)
	assert.Equal(t, "45 min read", manual.ReadTime)
}

func TestPublishKeepsIcon(t *testing.T) {
	d := newDesk()
	o := validOverview()
	o.Icon = "BookOpen"
	post, err := d.publisher.Publish(context.Background(), Draft{Overview: o, Content: validContent()})
	require.NoError(t, err)
	assert.Equal(t, "BookOpen", post.Icon)
	assert.Equal(t, "BookOpen", d.posts.List(context.Background())[0].Icon)
}
