// Copyright 2026 i2sfuzz project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

//go:build linux

package main

import (
	"html/template"
	"net/http"

	"github.com/google/i2sfuzz/pkg/log"
	"github.com/google/i2sfuzz/pkg/mgrconfig"
	"github.com/google/i2sfuzz/pkg/stat"
	"github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func serveHTTP(cfg *mgrconfig.Config) {
	mux := newServeMux(cfg)
	log.Logf(0, "serving http on http://%v", cfg.HTTP)
	go func() {
		err := http.ListenAndServe(cfg.HTTP, mux)
		if err != nil {
			log.Fatalf("failed to listen on %v: %v", cfg.HTTP, err)
		}
	}()
}

func newServeMux(cfg *mgrconfig.Config) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, handler func(http.ResponseWriter, *http.Request)) {
		mux.Handle(pattern, handlers.CompressHandler(http.HandlerFunc(handler)))
	}
	handle("/stats", func(w http.ResponseWriter, r *http.Request) {
		data := &uiStatsData{
			Name:  cfg.Name,
			Stats: stat.Collect(stat.All),
		}
		executeTemplate(w, statsTemplate, data)
	})
	handle("/log", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(log.CachedLogOutput()))
	})
	handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{}).ServeHTTP)
	// Browsers like to request this, without special handler this goes to / handler.
	handle("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {})
	handle("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/stats", http.StatusFound)
	})
	return mux
}

type uiStatsData struct {
	Name  string
	Stats []stat.UI
}

func executeTemplate(w http.ResponseWriter, templ *template.Template, data any) {
	if err := templ.Execute(w, data); err != nil {
		log.Logf(0, "failed to execute template: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var statsTemplate = template.Must(template.New("").Parse(`
<!doctype html>
<html>
<head>
	<title>{{.Name}} i2s stats</title>
</head>
<body>
<table>
	<caption>Stats{{if .Name}} for {{.Name}}{{end}}</caption>
	{{range $s := $.Stats}}
	<tr>
		<td title="{{$s.Desc}}">{{$s.Name}}</td>
		<td>{{$s.Value}}</td>
	</tr>
	{{end}}
</table>
</body></html>
`))
