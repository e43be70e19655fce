package server

import (
	"encoding/json"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/book-reader/internal/book"
)

type bookResponse struct {
	Title    string `json:"title"`
	Author   string `json:"author,omitempty"`
	Headings int    `json:"headings"`
	Chapters int    `json:"chapters"`
}

type chapterResponse struct {
	book.Chapter
	Markdown string `json:"markdown"`
}

type resolveResponse struct {
	ID        string `json:"id"`
	ChapterID string `json:"chapter_id"`
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, bookResponse{
		Title:    s.book.Title,
		Author:   s.book.Author,
		Headings: len(s.book.Headings),
		Chapters: len(s.book.Chapters),
	})
}

func (s *Server) handleHeadings(w http.ResponseWriter, r *http.Request) {
	headings := s.book.Headings
	if headings == nil {
		headings = []book.Heading{}
	}
	writeJSON(w, http.StatusOK, headings)
}

func (s *Server) handleChapters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.book.Chapters)
}

func (s *Server) handleChapter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, ok := s.book.Chapters.Find(id)
	if !ok {
		writeError(w, http.StatusNotFound, "chapter not found: "+id)
		return
	}
	md, _ := s.book.ChapterSection(id)
	writeJSON(w, http.StatusOK, chapterResponse{Chapter: c, Markdown: md})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	writeJSON(w, http.StatusOK, resolveResponse{
		ID:        id,
		ChapterID: book.ResolveActiveParent(s.book.Chapters, id),
	})
}

// handleStatic serves the rendered page and its assets from memory.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Path, "/")
	if p == "" {
		p = "index.html"
	}
	data, ok := s.site.Files[p]
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctype := mime.TypeByExtension(path.Ext(p))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
