package htmltabs

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
{{.Tabs}}
<script>
const post = (url) => fetch(url, {method: "POST"}).then(() => location.reload());
document.querySelectorAll("[data-tab]").forEach((b) => {
  b.addEventListener("click", () => post("tabs/" + encodeURIComponent(b.id) + "/select"));
});
document.querySelectorAll("[data-tab-list]").forEach((l) => {
  l.addEventListener("keydown", (e) => {
    if (e.key === "ArrowLeft" || e.key === "ArrowRight") post("keydown/" + e.key);
  });
});
</script>
</body>
</html>
`))

type server struct {
	mu     sync.Mutex
	widget *Widget
	title  string
	logger *slog.Logger
}

// Handler serves a page hosting w and the endpoints its script posts
// events to. Requests are serialised: the widget expects the one-event-
// at-a-time model of a UI loop.
func Handler(w *Widget, title string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &server{widget: w, title: title, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", s.page)
	r.Get("/fragment", s.fragment)
	r.Post("/tabs/{key}/select", s.selectTab)
	r.Post("/keydown/{key}", s.keyDown)
	return r
}

func (s *server) page(rw http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	tabs, err := s.widget.HTML()
	s.mu.Unlock()
	if err != nil {
		s.fail(rw, r, err)
		return
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, struct {
		Title string
		Tabs  template.HTML
	}{Title: s.title, Tabs: tabs}); err != nil {
		s.fail(rw, r, err)
		return
	}
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = rw.Write(buf.Bytes())
}

func (s *server) fragment(rw http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	s.mu.Lock()
	err := s.widget.Render(&buf)
	s.mu.Unlock()
	if err != nil {
		s.fail(rw, r, err)
		return
	}
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = rw.Write(buf.Bytes())
}

// selectTab and keyDown answer 204 for no-ops too: an unknown tab or an
// unhandled key is not an error for the widget.
func (s *server) selectTab(rw http.ResponseWriter, r *http.Request) {
	key, ok := s.keyParam(rw, r)
	if !ok {
		return
	}
	s.mu.Lock()
	changed := s.widget.Click(key)
	s.mu.Unlock()
	s.logger.Debug("tab click", "tab", key, "applied", changed, "request_id", middleware.GetReqID(r.Context()))
	rw.WriteHeader(http.StatusNoContent)
}

func (s *server) keyDown(rw http.ResponseWriter, r *http.Request) {
	key, ok := s.keyParam(rw, r)
	if !ok {
		return
	}
	s.mu.Lock()
	moved := s.widget.KeyDown(key)
	s.mu.Unlock()
	s.logger.Debug("tab keydown", "key", key, "moved", moved, "request_id", middleware.GetReqID(r.Context()))
	rw.WriteHeader(http.StatusNoContent)
}

// keyParam decodes the {key} segment. chi routes on the escaped path
// whenever the request carries one, so the parameter is still
// percent-encoded in that case.
func (s *server) keyParam(rw http.ResponseWriter, r *http.Request) (string, bool) {
	key := chi.URLParam(r, "key")
	if r.URL.RawPath == "" {
		return key, true
	}
	decoded, err := url.PathUnescape(key)
	if err != nil {
		s.logger.Debug("bad key segment", "key", key, "err", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(rw, "bad key", http.StatusBadRequest)
		return "", false
	}
	return decoded, true
}

func (s *server) fail(rw http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("render failed", "err", err, "request_id", middleware.GetReqID(r.Context()))
	http.Error(rw, "render failed", http.StatusInternalServerError)
}
