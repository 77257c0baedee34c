package summary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keepstack/devsummary/values"
)

func TestReportFullScenario(t *testing.T) {
	root := values.Parse([]string{
		"ingress:",
		"  host: dev.local",
		"postgres:",
		"  username: admin",
		"  password: s3cr3t",
		"secrets:",
		"  data:",
		"    SMTP_URL: smtp://localhost:1025",
	})

	var buf bytes.Buffer
	Report(root, &buf)

	assert.Equal(t,
		"Ingress URL: http://dev.local:8080\n"+
			"Postgres credentials: admin/s3cr3t\n"+
			"SMTP URL: smtp://localhost:1025\n",
		buf.String())
}

func TestReportAllFields(t *testing.T) {
	root := values.Parse([]string{
		"ingress:",
		"  host: dev.local",
		"postgres:",
		"  username: admin",
		"  password: s3cr3t",
		"secrets:",
		"  data:",
		"    SMTP_URL: smtp://localhost:1025",
		"    JWT_SECRET: changeme",
		"observability:",
		"  grafana:",
		"    adminUser: grafana",
		"    adminPassword: dashboards",
	})

	var buf bytes.Buffer
	Report(root, &buf)

	assert.Equal(t,
		"Ingress URL: http://dev.local:8080\n"+
			"Postgres credentials: admin/s3cr3t\n"+
			"SMTP URL: smtp://localhost:1025\n"+
			"JWT secret: changeme\n"+
			"Grafana credentials: grafana/dashboards\n",
		buf.String())
}

// Output order follows the report, not the order keys appear in the
// source document.
func TestReportOrderIndependentOfSource(t *testing.T) {
	root := values.Parse([]string{
		"secrets:",
		"  data:",
		"    SMTP_URL: smtp://localhost:1025",
		"ingress:",
		"  host: dev.local",
	})

	var buf bytes.Buffer
	Report(root, &buf)

	assert.Equal(t,
		"Ingress URL: http://dev.local:8080\n"+
			"SMTP URL: smtp://localhost:1025\n",
		buf.String())
}

func TestReportSkipsPartialCredentials(t *testing.T) {
	root := values.Parse([]string{
		"postgres:",
		"  username: admin",
		"observability:",
		"  grafana:",
		"    adminPassword: lonely",
	})

	var buf bytes.Buffer
	Report(root, &buf)

	assert.Empty(t, buf.String())
}

func TestReportSkipsEmptyAndWrongKinds(t *testing.T) {
	root := values.Parse([]string{
		`ingress:`,
		`  host: ""`,
		`secrets: scalar-not-mapping`,
	})

	var buf bytes.Buffer
	Report(root, &buf)

	assert.Empty(t, buf.String())
}

func TestReportEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	Report(values.NewMapping(), &buf)
	assert.Empty(t, buf.String())
}
