package handlers

import (
	"errors"
	"net/http"

	"github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/Leonard-ssj/portfolio/internal/notes"
	"github.com/Leonard-ssj/portfolio/internal/view"
	"github.com/labstack/echo/v4"
)

// NotesHandler serves the notes index, its live search and single notes.
type NotesHandler struct {
	*Pages
}

func NewNotesHandler(p *Pages) *NotesHandler {
	return &NotesHandler{Pages: p}
}

func (h *NotesHandler) list(c echo.Context, p view.Page) (view.NotesList, error) {
	var req NotesRequest
	if err := c.Bind(&req); err != nil {
		return view.NotesList{}, err
	}
	if err := c.Validate(&req); err != nil {
		return view.NotesList{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lang := p.Lang.Lang()
	q := notes.Query{Text: req.Query, Category: req.Category}
	return view.NotesList{
		Query:      q,
		Categories: notes.Categories(p.Site.Notes.Posts, lang),
		Results:    notes.Filter(p.Site.Notes.Posts, lang, q),
	}, nil
}

// List renders the notes index filtered by ?q= and ?category=.
func (h *NotesHandler) List(c echo.Context) error {
	p := h.page(c, h.title(c, h.content.Site().Notes.Title))
	l, err := h.list(c, p)
	if err != nil {
		return err
	}
	return h.renderer.Page(c, http.StatusOK, view.NotesPage(p, l))
}

// Results renders only the result list for the search box.
func (h *NotesHandler) Results(c echo.Context) error {
	p := h.fragment(c)
	l, err := h.list(c, p)
	if err != nil {
		return err
	}
	return h.renderer.Page(c, http.StatusOK, view.NotesResults(p, l))
}

// Show renders one note, or a 404 page for an unknown slug.
func (h *NotesHandler) Show(c echo.Context) error {
	site := h.content.Site()
	n, err := notes.BySlug(site.Notes.Posts, c.Param("slug"))
	if errors.Is(err, notes.ErrNotFound) {
		p := h.page(c, site.Label(middleware.Selector(c), "noteNotFound"))
		return h.renderer.Page(c, http.StatusNotFound, view.NoteNotFound(p))
	}
	p := h.page(c, h.title(c, n.Title))
	return h.renderer.Page(c, http.StatusOK, view.NotePage(p, n))
}
