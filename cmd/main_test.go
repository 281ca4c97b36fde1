package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/handlers"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
	"STORAGE_BACKEND", "STORAGE_KEY_PREFIX", "SEED_ON_START",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS",
	"KAFKA_BROKERS", "KAFKA_TOPIC", "JWT_SECRET_KEY", "JWT_EXP_SECOND",
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	for _, key := range configKeys {
		os.Unsetenv(key)
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "version v1.0.0")
	assert.Contains(t, output, "commit abcd1234")
	assert.Contains(t, output, "build 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)

	assert.Equal(t, backendMemory, cfg.storageBackend)
	assert.Equal(t, repositories.DefaultKeyPrefix, cfg.keyPrefix)
	assert.True(t, cfg.seedOnStart)

	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, 16, cfg.pgMaxOpenConns)
	assert.Equal(t, 8, cfg.pgMaxIdleConns)
	assert.Equal(t, 6379, cfg.redisPort)
	assert.Equal(t, 10, cfg.redisPoolSize)

	assert.Empty(t, cfg.kafkaBrokers)
	assert.Equal(t, "recipe-atlas-events", cfg.kafkaTopic)

	assert.Equal(t, "my_super_secret_key", cfg.jwtSecretKey)
	assert.Equal(t, 3600, cfg.jwtExpSecond)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("STORAGE_KEY_PREFIX", "test_")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("KAFKA_TOPIC", "events")
	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("JWT_EXP_SECOND", "300")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.appHost)
	assert.Equal(t, "9090", cfg.appPort)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.Equal(t, backendPostgres, cfg.storageBackend)
	assert.Equal(t, "test_", cfg.keyPrefix)
	assert.False(t, cfg.seedOnStart)
	assert.Equal(t, "pg.example.com", cfg.pgHost)
	assert.Equal(t, 5433, cfg.pgPort)
	assert.Equal(t, 2, cfg.redisDB)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.kafkaBrokers)
	assert.Equal(t, "events", cfg.kafkaTopic)
	assert.Equal(t, "supersecret", cfg.jwtSecretKey)
	assert.Equal(t, 300, cfg.jwtExpSecond)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "backend", key: "STORAGE_BACKEND", val: "mongo"},
		{name: "port", key: "POSTGRES_PORT", val: "not-a-number"},
		{name: "seed flag", key: "SEED_ON_START", val: "maybe"},
		{name: "jwt expiration", key: "JWT_EXP_SECOND", val: "1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			t.Setenv(tt.key, tt.val)

			_, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewKafkaWriter_NoBrokers(t *testing.T) {
	assert.Nil(t, newKafkaWriter(nil, "events"))
	assert.NotNil(t, newKafkaWriter([]string{"localhost:9092"}, "events"))
}

func testConfig() config {
	return config{
		appHost:        "127.0.0.1",
		appPort:        "8080",
		storageBackend: backendMemory,
		keyPrefix:      repositories.DefaultKeyPrefix,
		jwtSecretKey:   "testsecret",
		jwtExpSecond:   60,
	}
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_SeededFlow(t *testing.T) {
	ctx := context.Background()
	router, seeder := newRouter(repositories.NewMemoryKeyValueRepository(), nil, nil, testConfig())

	seeded, err := seeder.Seed(ctx)
	require.NoError(t, err)
	require.True(t, seeded)

	srv := httptest.NewServer(router)
	defer srv.Close()

	// Anonymous catalog access
	resp := doJSON(t, srv, http.MethodGet, "/api/v1/recipes?regionId=7", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var recipes []models.Recipe
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recipes))
	require.NotEmpty(t, recipes)
	assert.Equal(t, "1", recipes[0].ID)

	resp = doJSON(t, srv, http.MethodGet, "/api/v1/session", "", "")
	var session models.AuthState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	assert.False(t, session.IsAuthenticated)

	// Voting requires a session
	resp = doJSON(t, srv, http.MethodPost, "/api/v1/variants/1/vote", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodPost, "/api/v1/login", "", `{"username":"user","password":"user123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var auth handlers.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	require.NotEmpty(t, auth.Token)

	// The seeded variant already carries this user's vote, so toggling removes it
	resp = doJSON(t, srv, http.MethodPost, "/api/v1/variants/1/vote", auth.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var variant models.RecipeVariant
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&variant))
	assert.Equal(t, 1, variant.Votes)
	assert.Equal(t, []string{"1"}, variant.VoterIDs)

	// Admin routes reject regular users
	resp = doJSON(t, srv, http.MethodGet, "/api/v1/admin/users", auth.Token, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodPost, "/api/v1/login", "", `{"username":"admin","password":"admin123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var adminAuth handlers.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&adminAuth))

	// The stored state follows the most recent login
	resp = doJSON(t, srv, http.MethodGet, "/api/v1/admin/session", adminAuth.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stored models.AuthState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
	assert.True(t, stored.IsAdmin())

	resp = doJSON(t, srv, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRun_Redis(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	cfg := testConfig()
	cfg.appPort = "8086"
	cfg.logLevel = "debug"
	cfg.storageBackend = backendRedis
	cfg.seedOnStart = true
	cfg.redisHost = redisHost
	cfg.redisPort = redisPort.Int()
	cfg.redisPoolSize = 10
	cfg.redisMinIdleConns = 2

	testCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
