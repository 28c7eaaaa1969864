package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/app"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/sqlstore"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                    "3000",
		DBDriver:                "sqlite",
		DBUrl:                   ":memory:",
		StaticDir:               "does-not-exist",
		RateLimitWindowSeconds:  60,
		RateLimitWriteThreshold: 0,
	}
}

func setupRouter(t *testing.T, cfg *config.Config) (*gin.Engine, database.Gateway) {
	t.Helper()
	db, err := database.NewSQLiteConnection(context.Background(), ":memory:")
	require.NoError(t, err)

	gw := database.NewSQLiteGateway(db)
	t.Cleanup(gw.Close)
	require.NoError(t, sqlstore.EnsureSchema(context.Background(), gw))

	sources := app.NewSources(gw)
	router := v1.NewRouter(v1.RouterDeps{
		Resources:   sources,
		PortfolioUC: usecase.NewPortfolioUsecase(sources),
		HealthUC:    usecase.NewHealthUsecase(gw),
		Config:      cfg,
	})
	return router, gw
}

func newRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, newRequest(method, path, body))
	return w
}

func TestCollectionRoutes(t *testing.T) {
	r, _ := setupRouter(t, testConfig())

	t.Run("Should create a project and list it", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/projetos", `{"titulo":"X","descricao":"Y","tecnologias":"Z"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"titulo":"X","descricao":"Y","tecnologias":"Z"}`, w.Body.String())

		w = do(r, http.MethodGet, "/api/projetos", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"titulo":"X","descricao":"Y","tecnologias":"Z"}]`, w.Body.String())
	})

	t.Run("Should get a single row by id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/projetos/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"titulo":"X","descricao":"Y","tecnologias":"Z"}`, w.Body.String())
	})

	t.Run("Should update a row and echo the id", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/projetos/1", `{"titulo":"X2"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"titulo":"X2","descricao":null,"tecnologias":null}`, w.Body.String())
	})

	t.Run("Should answer 404 when updating a missing education", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/formacoes/999", `{"curso":"ADS"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Formação não encontrada"}`, w.Body.String())
	})

	t.Run("Should answer 404 for a non numeric id", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/api/softskills/abc", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Soft skill não encontrada"}`, w.Body.String())
	})

	t.Run("Should delete with 204 and then 404", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/hardskills", `{"nomeHabilidade":"Linguagens","habilidade":"Go"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var created struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		path := "/api/hardskills/" + jsonNumber(created.ID)
		w = do(r, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = do(r, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Hard skill não encontrada"}`, w.Body.String())
	})

	t.Run("Should return an empty array for an empty table", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/softskills", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/softskills", `{"habilidade":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	})

	t.Run("Should store NULL columns for an empty body", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/softskills", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":1,"habilidade":null}`, w.Body.String())
	})
}

func TestCollectionRoundTrip(t *testing.T) {
	cases := []struct {
		path     string
		body     string
		created  string
		notFound string
	}{
		{
			path:     "/api/formacoes",
			body:     `{"curso":"ADS","instituicao":"FATEC","ano":"2024-2027"}`,
			created:  `{"id":1,"curso":"ADS","instituicao":"FATEC","ano":"2024-2027"}`,
			notFound: "Formação não encontrada",
		},
		{
			path:     "/api/softskills",
			body:     `{"habilidade":"Comunicação"}`,
			created:  `{"id":1,"habilidade":"Comunicação"}`,
			notFound: "Soft skill não encontrada",
		},
		{
			path:     "/api/hardskills",
			body:     `{"nomeHabilidade":"Linguagens","habilidade":"Go, SQL"}`,
			created:  `{"id":1,"nomeHabilidade":"Linguagens","habilidade":"Go, SQL"}`,
			notFound: "Hard skill não encontrada",
		},
		{
			path:     "/api/projetos",
			body:     `{"titulo":"API","descricao":"Portfolio","tecnologias":"Go"}`,
			created:  `{"id":1,"titulo":"API","descricao":"Portfolio","tecnologias":"Go"}`,
			notFound: "Projeto não encontrado",
		},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			r, _ := setupRouter(t, testConfig())

			w := do(r, http.MethodPost, tc.path, tc.body)
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.created, w.Body.String())

			w = do(r, http.MethodGet, tc.path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, "["+tc.created+"]", w.Body.String())

			w = do(r, http.MethodGet, tc.path+"/1", "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tc.created, w.Body.String())

			for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
				w = do(r, method, tc.path+"/42", tc.body)
				assert.Equal(t, http.StatusNotFound, w.Code, method)
				assert.JSONEq(t, `{"message":"`+tc.notFound+`"}`, w.Body.String(), method)
			}
		})
	}
}

func TestOptionalColumnsEchoAsNull(t *testing.T) {
	r, _ := setupRouter(t, testConfig())

	w := do(r, http.MethodPost, "/api/projetos", `{"titulo":"X","descricao":"Y"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"titulo":"X","descricao":"Y","tecnologias":null}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/projetos", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"titulo":"X","descricao":"Y","tecnologias":null}]`, w.Body.String())
}

func TestSingletonRoutes(t *testing.T) {
	r, _ := setupRouter(t, testConfig())

	t.Run("Should serve the empty profile shape", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/dados", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"nome":"","descricao":""}`, w.Body.String())
	})

	t.Run("Should report zero changes when updating an empty table", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/sobre", `{"apresentacao":"Olá"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"changes":0,"apresentacao":"Olá"}`, w.Body.String())
	})

	t.Run("Should keep a single row across creates", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/dados", `{"nome":"Ana","descricao":"Dev"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(r, http.MethodPost, "/api/dados", `{"nome":"Bia","descricao":"Ops"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(r, http.MethodGet, "/api/dados", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Bia", got["nome"])
		assert.Equal(t, "Ops", got["descricao"])
	})

	t.Run("Should update the existing row", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/dados", `{"nome":"Carla","descricao":"SRE"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"changes":1,"nome":"Carla","descricao":"SRE"}`, w.Body.String())
	})

	t.Run("Should not echo a client supplied id on update", func(t *testing.T) {
		w := do(r, http.MethodPut, "/api/dados", `{"id":777,"nome":"c","descricao":"d"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"changes":1,"nome":"c","descricao":"d"}`, w.Body.String())

		w = do(r, http.MethodGet, "/api/dados", "")
		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEqual(t, float64(777), got["id"])
		assert.Equal(t, "c", got["nome"])
	})

	t.Run("Should delete the contact with a confirmation", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/contato", `{"email":"a@b.c"}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = do(r, http.MethodDelete, "/api/contato", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Contato deletado com sucesso"}`, w.Body.String())

		// Deleting an empty table still confirms
		w = do(r, http.MethodDelete, "/api/contato", "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = do(r, http.MethodGet, "/api/contato", "")
		assert.JSONEq(t, `{"email":"","github":"","linkedin":""}`, w.Body.String())
	})

	t.Run("Should not route DELETE on the profile", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/api/dados", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPortfolioRoutes(t *testing.T) {
	r, gw := setupRouter(t, testConfig())

	data, err := sqlstore.DefaultSeedData()
	require.NoError(t, err)
	_, err = sqlstore.NewSeeder(gw, data).Seed(context.Background())
	require.NoError(t, err)

	t.Run("Should render the landing page", func(t *testing.T) {
		w := do(r, http.MethodGet, "/", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "<h1>")
	})

	t.Run("Should aggregate every resource", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/portfolio", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		for _, key := range []string{"dadosPessoais", "sobre", "formacoes", "softSkills", "hardSkills", "projetos", "contato"} {
			assert.Contains(t, got, key)
		}
	})

	t.Run("Should report health", func(t *testing.T) {
		w := do(r, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","database":"sqlite"}`, w.Body.String())
	})
}

func TestStorageFailure(t *testing.T) {
	r, gw := setupRouter(t, testConfig())

	_, err := gw.Execute(context.Background(), `DROP TABLE "projetos"`)
	require.NoError(t, err)

	w := do(r, http.MethodGet, "/api/projetos", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "no such table")

	w = do(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitWriteThreshold = 1
	cfg.RateLimitWindowSeconds = int(time.Minute.Seconds())
	r, _ := setupRouter(t, cfg)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/softskills", `{"habilidade":"Foco"}`).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/softskills", `{"habilidade":"Foco"}`).Code)

	// Reads are never limited
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/softskills", "").Code)
}

func TestWriteRateLimitIgnoresForwardedFor(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitWriteThreshold = 1
	r, _ := setupRouter(t, cfg)

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		req := newRequest(http.MethodPost, "/api/softskills", `{"habilidade":"Foco"}`)
		req.Header.Set("X-Forwarded-For", "203.0.113."+jsonNumber(int64(i+1)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{
		http.StatusOK,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)
}

func TestWriteRateLimitHonoursTrustedProxy(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitWriteThreshold = 1
	// httptest requests arrive from 192.0.2.1
	cfg.TrustedProxies = []string{"192.0.2.1"}
	r, _ := setupRouter(t, cfg)

	for i := 0; i < 3; i++ {
		req := newRequest(http.MethodPost, "/api/softskills", `{"habilidade":"Foco"}`)
		req.Header.Set("X-Forwarded-For", "203.0.113."+jsonNumber(int64(i+1)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "client %d", i+1)
	}
}

func TestSwaggerDocumentCoversRoutes(t *testing.T) {
	r, _ := setupRouter(t, testConfig())

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	documented := 0
	for _, route := range r.Routes() {
		if strings.HasPrefix(route.Path, "/swagger") || strings.HasPrefix(route.Path, "/static") {
			continue
		}
		path := strings.ReplaceAll(route.Path, ":id", "{id}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "undocumented path %s", path) {
			assert.Contains(t, ops, strings.ToLower(route.Method), "undocumented %s %s", route.Method, path)
		}
		documented++
	}

	total := 0
	for _, ops := range doc.Paths {
		total += len(ops)
	}
	assert.Equal(t, documented, total, "documented operations without a route")
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
