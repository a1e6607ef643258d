package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	BasePath    string                                `json:"basePath"`
	Info        map[string]interface{}                `json:"info"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"definitions"`
}

func TestRegisteredDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api", doc.BasePath)
	assert.Equal(t, "HabitHub-API", doc.Info["title"])

	routes := map[string][]string{
		"/habits":                           {"get", "post"},
		"/habits/{id}":                      {"get", "delete"},
		"/habits/periodicity/{periodicity}": {"get"},
		"/habits/{id}/complete":             {"post"},
		"/habits/{id}/completions":          {"get"},
		"/analytics/longest-streak":         {"get"},
		"/analytics/{id}/longest-streak":    {"get"},
		"/housekeeping":                     {"post"},
		"/info":                             {"get"},
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, "%s %s", m, path)
		}
	}

	report := doc.Definitions["models.HousekeepingReport"].Properties
	for _, field := range []string{"completions_rewritten", "completions_unreadable", "completions_deleted", "completions_expired", "message"} {
		assert.Contains(t, report, field)
	}
}

func TestSwaggerJSONMatchesTemplate(t *testing.T) {
	fromFile, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var file, registered map[string]interface{}
	require.NoError(t, json.Unmarshal(fromFile, &file))
	require.NoError(t, json.Unmarshal([]byte(raw), &registered))
	assert.Equal(t, registered["paths"], file["paths"])
	assert.Equal(t, registered["definitions"], file["definitions"])
}
