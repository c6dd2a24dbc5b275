package timezones

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/goliatone/go-formcore/pkg/model"
)

// HandlerOption customises the handler.
type HandlerOption func(*handler)

// WithZones replaces the embedded list.
func WithZones(zones []string) HandlerOption {
	return func(h *handler) {
		h.zones = append([]string{}, zones...)
	}
}

// WithSearchConfig overrides the search limits.
func WithSearchConfig(cfg SearchConfig) HandlerOption {
	return func(h *handler) {
		h.search = cfg
	}
}

type handler struct {
	zones  []string
	search SearchConfig
}

type optionsResponse struct {
	Data []model.Option `json:"data"`
}

// NewHandler returns a handler serving zone search results as Picker options.
func NewHandler(opts ...HandlerOption) http.Handler {
	h := &handler{search: DefaultSearchConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	if h.search.DefaultLimit <= 0 {
		h.search.DefaultLimit = DefaultSearchConfig().DefaultLimit
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	zones := h.zones
	if zones == nil {
		loaded, err := Default()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		zones = loaded
	}

	query := r.URL.Query()
	results := PickerOptions(Search(zones, query.Get("q"), parseInt(query.Get("limit")), h.search))
	if results == nil {
		results = []model.Option{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(optionsResponse{Data: results})
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
