// filepath: internal/api/handlers/utils.go
package handlers

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// parseID reads a positive integer path variable.
func parseID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// actorFromRequest identifies the caller for audit records.
func actorFromRequest(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
