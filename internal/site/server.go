package site

import (
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// PreviewHandler serves a built site directory under basePath, the same way
// a static host serving the site from a subfolder would.
func PreviewHandler(dir, basePath string) http.Handler {
	if basePath == "" {
		basePath = "/"
	}
	fs := http.FileServer(http.Dir(dir))
	mux := http.NewServeMux()
	mux.Handle(basePath, http.StripPrefix(strings.TrimSuffix(basePath, "/"), fs))
	if basePath != "/" {
		mux.Handle("/", http.RedirectHandler(basePath, http.StatusFound))
	}
	return mux
}

// Serve starts a local HTTP file server for a built site.
func Serve(dir string, port int, basePath string, open bool, log *logrus.Entry) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d%s", port, basePath)

	if open {
		go openBrowser(url)
	}

	log.WithFields(logrus.Fields{"url": url, "dir": dir}).Info("serving site, press Ctrl+C to stop")
	return http.ListenAndServe(addr, PreviewHandler(dir, basePath))
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
