package summary

import (
	"fmt"
	"io"

	"github.com/keepstack/devsummary/values"
)

// Report writes one line per field present in the tree, in a fixed order
// regardless of key order in the source. Absent or empty fields are
// skipped silently; an empty tree produces no output at all.
func Report(root *values.Mapping, w io.Writer) {
	if host, ok := lookup(root, "ingress.host"); ok {
		fmt.Fprintf(w, "Ingress URL: http://%s:8080\n", host)
	}

	username, okUser := lookup(root, "postgres.username")
	password, okPass := lookup(root, "postgres.password")
	if okUser && okPass {
		fmt.Fprintf(w, "Postgres credentials: %s/%s\n", username, password)
	}

	if smtpURL, ok := lookup(root, "secrets.data.SMTP_URL"); ok {
		fmt.Fprintf(w, "SMTP URL: %s\n", smtpURL)
	}
	if jwtSecret, ok := lookup(root, "secrets.data.JWT_SECRET"); ok {
		fmt.Fprintf(w, "JWT secret: %s\n", jwtSecret)
	}

	adminUser, okUser := lookup(root, "observability.grafana.adminUser")
	adminPass, okPass := lookup(root, "observability.grafana.adminPassword")
	if okUser && okPass {
		fmt.Fprintf(w, "Grafana credentials: %s/%s\n", adminUser, adminPass)
	}
}

// lookup treats an empty scalar the same as an absent one: nothing worth
// printing.
func lookup(root *values.Mapping, path string) (string, bool) {
	value, ok := values.Lookup(root, path)
	return value, ok && value != ""
}
