package hub

import (
	"context"
	"errors"
	"fmt"
)

// Publisher moves drafts from a DraftStore into a PublishedStore.
type Publisher struct {
	drafts *DraftStore
	posts  *PublishedStore
	opts   storeOptions
}

// NewPublisher returns a Publisher over the two stores.
func NewPublisher(drafts *DraftStore, posts *PublishedStore, opts ...StoreOption) *Publisher {
	return &Publisher{drafts: drafts, posts: posts, opts: newStoreOptions(opts)}
}

// Publish validates the draft body, writes the published post and then
// removes the draft.
//
// An invalid body returns ValidationErrors and changes nothing. If the post
// cannot be written the draft is left in place. The draft is deleted only if
// it arrived with an ID; a draft that was never saved has nothing to delete.
// If that delete fails, the post is returned together with an error wrapping
// ErrDraftNotRemoved: the post is live and the draft lingers.
func (p *Publisher) Publish(ctx context.Context, d Draft) (Post, error) {
	if errs := ValidateContent(d.Content); len(errs) > 0 {
		return Post{}, errs
	}

	post := p.build(d)
	if err := p.posts.Insert(ctx, post); err != nil {
		return Post{}, fmt.Errorf("publish %s: %w", post.ID, err)
	}
	p.opts.logger.Info("post published", "id", post.ID, "slug", post.Slug)

	if d.ID == "" {
		return post, nil
	}
	if err := p.drafts.Delete(ctx, d.ID); err != nil {
		p.opts.logger.Warn("published post left its draft behind", "id", d.ID, "error", err)
		return post, errors.Join(ErrDraftNotRemoved, err)
	}
	return post, nil
}

func (p *Publisher) build(d Draft) Post {
	id := d.ID
	if id == "" {
		id = GenerateID()
	}
	slug := d.Slug
	if slug == "" {
		slug = GenerateSlug(d.Title)
	}
	if slug == "" {
		slug = id
	}
	overview := d.Overview
	if !d.ReadTimeManual || blank(overview.ReadTime) {
		overview.ReadTime = EstimateReadTime(d.Content)
	}
	return Post{
		ID:       id,
		Slug:     slug,
		Overview: overview,
		Content:  d.Content,
		Date:     p.opts.now().Format(DateLayout),
	}
}
