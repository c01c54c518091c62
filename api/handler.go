package api

import (
	"fmt"
	"net/http"

	"github.com/Tk21111/color_server/color"
)

// ColorPage renders a heading in a freshly drawn color. The request itself is ignored.
func ColorPage(src color.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := color.Hex(color.Random(src))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "<h1 style='color:%s'>Random Color: %s</h1>", c, c)
	}
}

// Routes serves ColorPage on exactly "/"; every other path is the mux's 404.
func Routes(src color.Source) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", ColorPage(src))
	return mux
}
