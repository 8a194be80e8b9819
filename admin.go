package hub

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// draftRequest is the body of a draft save or an unsaved publish. A nil
// Content keeps whatever body the stored draft already has.
type draftRequest struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Overview
	Content        []ContentBlock `json:"content"`
	ReadTimeManual bool           `json:"readTimeManual"`
}

func (r draftRequest) draft() Draft {
	return Draft{
		ID:             r.ID,
		Slug:           r.Slug,
		Overview:       r.Overview,
		Content:        r.Content,
		ReadTimeManual: r.ReadTimeManual,
	}
}

type contentRequest struct {
	Content  []ContentBlock `json:"content"`
	ReadTime string         `json:"readTime"`
}

// contentResponse carries the saved draft plus any problems that would block
// publishing; saving an incomplete body is allowed.
type contentResponse struct {
	Draft  Draft            `json:"draft"`
	Errors ValidationErrors `json:"errors,omitempty"`
}

type publishResponse struct {
	Post    Post   `json:"post"`
	Warning string `json:"warning,omitempty"`
}

type imageResponse struct {
	URL string `json:"url"`
}

func (a *App) handleAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	return Render(c, a.Views.AdminDashboard(
		a.Drafts.List(ctx),
		a.Cache.ListPosts(ctx, ""),
		popNotice(c),
		CsrfToken(c),
	))
}

func handleEditorOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, DefaultEditorOptions())
}

func (a *App) handleListDrafts(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Drafts.List(c.Request().Context()))
}

func (a *App) handleGetDraft(c echo.Context) error {
	d, ok := a.Drafts.Get(c.Request().Context(), c.Param("id"))
	if !ok {
		return respondError(c, http.StatusNotFound, "Draft not found")
	}
	return c.JSON(http.StatusOK, d)
}

func (a *App) handleActiveDraft(c echo.Context) error {
	d, ok := a.Drafts.Get(c.Request().Context(), ActiveDraftID(c))
	if !ok {
		return respondError(c, http.StatusNotFound, "No draft in progress")
	}
	return c.JSON(http.StatusOK, d)
}

// handleSaveDraft stores the overview of a new or existing draft and makes it
// the session's active draft.
func (a *App) handleSaveDraft(c echo.Context) error {
	ctx := c.Request().Context()
	var req draftRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if errs := ValidateOverview(req.Overview); len(errs) > 0 {
		return respondInvalid(c, errs)
	}

	d := req.draft()
	isNew := true
	if existing, ok := a.Drafts.Get(ctx, d.ID); ok {
		isNew = false
		if d.Content == nil {
			d.Content = existing.Content
		}
	}
	if !d.ReadTimeManual || blank(d.ReadTime) {
		d.ReadTimeManual = false
		d.ReadTime = EstimateReadTime(d.Content)
	}

	saved, err := a.Drafts.Save(ctx, d)
	if err != nil {
		return respondSaveFailed(c)
	}
	if err := setActiveDraft(c, saved.ID); err != nil {
		a.Logger.Warn("remember active draft", "id", saved.ID, "error", err)
	}
	status := http.StatusOK
	if isNew {
		status = http.StatusCreated
	}
	return c.JSON(status, saved)
}

// handleSaveContent replaces the body of a stored draft. A read time sent by
// the author is kept as a manual override; otherwise it is re-estimated.
func (a *App) handleSaveContent(c echo.Context) error {
	ctx := c.Request().Context()
	d, ok := a.Drafts.Get(ctx, c.Param("id"))
	if !ok {
		return respondError(c, http.StatusNotFound, "Draft not found")
	}
	var req contentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	d.Content = req.Content
	switch {
	case !blank(req.ReadTime):
		d.ReadTime = req.ReadTime
		d.ReadTimeManual = true
	case !d.ReadTimeManual:
		d.ReadTime = EstimateReadTime(d.Content)
	}

	saved, err := a.Drafts.Save(ctx, d)
	if err != nil {
		return respondSaveFailed(c)
	}
	return c.JSON(http.StatusOK, contentResponse{Draft: saved, Errors: ValidateContent(saved.Content)})
}

func (a *App) handleDeleteDraft(c echo.Context) error {
	id := c.Param("id")
	if err := a.Drafts.Delete(c.Request().Context(), id); err != nil {
		return respondSaveFailed(c)
	}
	if ActiveDraftID(c) == id {
		if err := setActiveDraft(c, ""); err != nil {
			a.Logger.Warn("forget active draft", "id", id, "error", err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handlePublishDraft(c echo.Context) error {
	d, ok := a.Drafts.Get(c.Request().Context(), c.Param("id"))
	if !ok {
		return respondError(c, http.StatusNotFound, "Draft not found")
	}
	return a.publish(c, d)
}

// handlePublishUnsaved publishes a draft straight from the editor without a
// prior save. Its overview is checked here since it never went through
// handleSaveDraft.
func (a *App) handlePublishUnsaved(c echo.Context) error {
	var req draftRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	errs := append(ValidateOverview(req.Overview), ValidateContent(req.Content)...)
	if len(errs) > 0 {
		return respondInvalid(c, errs)
	}
	return a.publish(c, req.draft())
}

func (a *App) publish(c echo.Context, d Draft) error {
	post, err := a.Publisher.Publish(c.Request().Context(), d)

	var invalid ValidationErrors
	switch {
	case errors.As(err, &invalid):
		return respondInvalid(c, invalid)
	case err != nil && !errors.Is(err, ErrDraftNotRemoved):
		if nerr := addNotice(c, saveFailedMessage); nerr != nil {
			a.Logger.Warn("queue notice", "error", nerr)
		}
		return respondSaveFailed(c)
	}

	a.Cache.Invalidate()
	if d.ID != "" && ActiveDraftID(c) == d.ID {
		if serr := setActiveDraft(c, ""); serr != nil {
			a.Logger.Warn("forget active draft", "id", d.ID, "error", serr)
		}
	}
	resp := publishResponse{Post: post}
	if err != nil {
		resp.Warning = "Your post is live, but its draft could not be removed."
	}
	if nerr := addNotice(c, fmt.Sprintf("Published %q.", post.Title)); nerr != nil {
		a.Logger.Warn("queue notice", "error", nerr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (a *App) handleImageUpload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Please select an image file")
	}
	if fh.Size > MaxImageSize {
		return respondError(c, http.StatusRequestEntityTooLarge, "Image size should be less than 5MB")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	uri, err := IngestImage(f, ImageOptions{MaxWidth: a.Config.MaxImageWidth})
	switch {
	case errors.Is(err, ErrNotImage):
		return respondError(c, http.StatusUnsupportedMediaType, "Please select an image file")
	case errors.Is(err, ErrImageTooLarge):
		return respondError(c, http.StatusRequestEntityTooLarge, "Image size should be less than 5MB")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, imageResponse{URL: uri})
}
