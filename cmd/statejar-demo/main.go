// Command statejar-demo serves a small preference endpoint backed by
// schema-validated cookies. Each request rebuilds a store from the request's
// cookie jar, applies query-parameter writes, and echoes the resulting state.
package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	statejar "github.com/statejar/statejar"
	"github.com/statejar/statejar/jar/httpjar"
	"github.com/statejar/statejar/schema"
)

type config struct {
	Addr         string `env:"STATEJAR_ADDR" envDefault:":8080"`
	CookiePath   string `env:"STATEJAR_COOKIE_PATH" envDefault:"/"`
	CookieMaxAge int    `env:"STATEJAR_COOKIE_MAX_AGE" envDefault:"604800"`
	Secure       bool   `env:"STATEJAR_SECURE"`
}

var prefs = schema.Object().
	Field("theme", schema.String()).Default("light").
	Field("volume", schema.Int()).Default(50).
	Field("visitor", schema.String()).Default("").
	MustBuild()

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer func() { _ = logger.Sync() }()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Errorw("parse env", "error", err)
		os.Exit(1)
	}

	attrs := statejar.Attributes{
		Path:     cfg.CookiePath,
		MaxAge:   cfg.CookieMaxAge,
		Secure:   cfg.Secure,
		HTTPOnly: false,
		SameSite: statejar.SameSiteLax,
	}

	http.HandleFunc("/prefs", func(w http.ResponseWriter, r *http.Request) {
		store := statejar.New(prefs,
			statejar.PickCookies(httpjar.NewReader(r), prefs),
			statejar.WithTransport(httpjar.NewWriter(w)),
			statejar.WithAttributes(attrs),
			statejar.WithLogger(logger),
		)

		if store.Get("visitor") == "" {
			if err := store.Set("visitor", uuid.NewString()); err != nil {
				logger.Warnw("assign visitor id", "error", err)
			}
		}
		if theme := r.URL.Query().Get("theme"); theme != "" {
			if err := store.Set("theme", theme); err != nil {
				logger.Warnw("set theme", "error", err)
			}
		}
		if vol := r.URL.Query().Get("volume"); vol != "" {
			if n, err := strconv.Atoi(vol); err == nil {
				if err := store.Set("volume", n); err != nil {
					logger.Warnw("set volume", "error", err)
				}
			}
		}

		facade := statejar.NewFacade(store)
		out := map[string]any{}
		for _, k := range store.Keys() {
			if v, ok := facade.Get(k); ok {
				out[k] = v
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			logger.Warnw("encode response", "error", err)
		}
	})

	logger.Infow("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		logger.Errorw("serve", "error", err)
		os.Exit(1)
	}
}
