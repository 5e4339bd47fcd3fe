package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"aureacursos.com.br/combo-web/internal/content"
	"aureacursos.com.br/combo-web/internal/nav"
	"aureacursos.com.br/combo-web/internal/observability"
	"aureacursos.com.br/combo-web/internal/page"
)

type handlers struct {
	landing *content.Landing
	baseURL string
}

func (h *handlers) page(r *http.Request) *page.Page {
	state := nav.ParseMenuState(r.URL.Query().Get("menu"))
	return page.New(h.landing,
		page.WithMenu(state),
		page.WithBaseURL(h.baseURL),
		page.WithAssetPrefix(AssetPrefix),
	)
}

// home renders the landing page. ?menu=open renders the header with the
// mobile panel expanded, which is also the no-script fallback.
func (h *handlers) home(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.page(r).Component())
}

// headerFragment answers the htmx menu swaps with the header alone.
func (h *handlers) headerFragment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	render(w, r, h.page(r).HeaderComponent())
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	templ.Handler(component, templ.WithErrorHandler(renderError)).ServeHTTP(w, r)
}

func renderError(_ *http.Request, err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
		http.Error(w, "Não foi possível carregar a página.", http.StatusInternalServerError)
	})
}
