package api_test

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cosmic"
	"cosmic/internal/api"
	"cosmic/internal/api/handler/v1handler"
	"cosmic/internal/catalog"
	"cosmic/pkg/storage/sqlite"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func loadSpec(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.V1Spec())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	return doc
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(ctx, sqlite.Options{Path: sqlite.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, cosmic.Migrate(ctx, db.DB.(*sql.DB), cosmic.DialectSQLite))

	registry := prometheus.NewRegistry()
	srv, err := api.NewServer(ctx, api.Deps{Deps: v1handler.Deps{Catalog: catalog.New(db)}}, api.Options{
		MetricsPath: "/metrics",
		Registerer:  registry,
		Gatherer:    registry,
	})
	require.NoError(t, err)

	return srv.Handler
}

type contract struct {
	t       *testing.T
	doc     *openapi3.T
	handler http.Handler
}

// call serves the request and checks the response against the operation
// declared for the templated path.
func (c contract) call(method, path, template string, params map[string]string, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	item := c.doc.Paths.Value(template)
	require.NotNil(c.t, item, template)
	op := item.GetOperation(method)
	require.NotNil(c.t, op, "%s %s", method, template)

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: params,
			Route: &routers.Route{
				Spec:      c.doc,
				Path:      template,
				PathItem:  item,
				Method:    method,
				Operation: op,
			},
		},
		Status:  rec.Code,
		Header:  rec.Header(),
		Options: &openapi3filter.Options{IncludeResponseStatus: true},
	}
	input.SetBodyBytes(rec.Body.Bytes())
	require.NoError(c.t, openapi3filter.ValidateResponse(context.Background(), input),
		"%s %s: %s", method, path, rec.Body.String())

	return rec
}

func TestV1SpecIsValid(t *testing.T) {
	doc := loadSpec(t)
	require.Equal(t, "Cosmic API", doc.Info.Title)

	for _, path := range []string{
		"/planets", "/planets/{id}", "/planets/{id}/scientists",
		"/scientists", "/scientists/{id}", "/scientists/{id}/planets", "/scientists/{id}/missions",
		"/missions", "/missions/{id}",
	} {
		require.NotNil(t, doc.Paths.Value(path), path)
	}
}

func TestServer_ResponsesMatchSpec(t *testing.T) {
	c := contract{t: t, doc: loadSpec(t), handler: newTestServer(t)}
	id := map[string]string{"id": "1"}

	rec := c.call(http.MethodPost, "/v1/planets", "/planets", nil, `{"name":"Mars","distance_from_earth":225}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = c.call(http.MethodPost, "/v1/planets", "/planets", nil, `{}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = c.call(http.MethodPost, "/v1/scientists", "/scientists", nil, `{"name":"Ada","field_of_study":"Astro"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = c.call(http.MethodPost, "/v1/scientists", "/scientists", nil, `{"name":"","field_of_study":"Astro"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"name must be provided","field":"name"}`, rec.Body.String())

	rec = c.call(http.MethodPost, "/v1/missions", "/missions", nil, `{"name":"M1","scientist_id":1,"planet_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = c.call(http.MethodPost, "/v1/missions", "/missions", nil, `{"name":"M2","planet_id":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = c.call(http.MethodPost, "/v1/missions", "/missions", nil, `{"name":"M2","scientist_id":9,"planet_id":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/planets", "/planets", nil, "").Code)
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/planets/1", "/planets/{id}", id, "").Code)
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/planets/1/scientists", "/planets/{id}/scientists", id, "").Code)
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/scientists", "/scientists", nil, "").Code)
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/scientists/1", "/scientists/{id}", id, "").Code)
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/scientists/1/planets", "/scientists/{id}/planets", id, "").Code)
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/scientists/1/missions", "/scientists/{id}/missions", id, "").Code)
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/missions", "/missions", nil, "").Code)
	require.Equal(t, http.StatusOK, c.call(http.MethodGet, "/v1/missions/1", "/missions/{id}", id, "").Code)
	require.Equal(t, http.StatusNotFound,
		c.call(http.MethodGet, "/v1/missions/7", "/missions/{id}", map[string]string{"id": "7"}, "").Code)

	rec = c.call(http.MethodPatch, "/v1/planets/1", "/planets/{id}", id, `{"nearest_star":"Sun","distance_from_earth":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":1,"name":"Mars","distance_from_earth":null,"nearest_star":"Sun"}`, rec.Body.String())
	rec = c.call(http.MethodPatch, "/v1/scientists/1", "/scientists/{id}", id, `{"field_of_study":"Geology"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = c.call(http.MethodPatch, "/v1/missions/1", "/missions/{id}", id, `{"planet_id":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, http.StatusConflict, c.call(http.MethodDelete, "/v1/planets/2", "/planets/{id}",
		map[string]string{"id": "2"}, "").Code)
	require.Equal(t, http.StatusNoContent, c.call(http.MethodDelete, "/v1/missions/1", "/missions/{id}", id, "").Code)
	require.Equal(t, http.StatusNoContent, c.call(http.MethodDelete, "/v1/planets/2", "/planets/{id}",
		map[string]string{"id": "2"}, "").Code)
	require.Equal(t, http.StatusNoContent, c.call(http.MethodDelete, "/v1/scientists/1", "/scientists/{id}", id, "").Code)
}

func TestServer_AuxiliaryEndpoints(t *testing.T) {
	h := newTestServer(t)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	rec := get("/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Equal(t, api.V1Spec(), rec.Body.Bytes())

	rec = get("/v1/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Cosmic API")

	rec = get("/debug/pprof/")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, http.StatusOK, get("/v1/planets").Code)
	rec = get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_server_requests")
	require.Contains(t, rec.Body.String(), "http_server_request_duration")
}

func TestServer_UnknownV1Route(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/comets", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
