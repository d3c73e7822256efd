package routes

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"hashlab/internal/config"
	"hashlab/internal/dao"
	"hashlab/internal/models"
	"hashlab/internal/services"
	"hashlab/pkg/logger"
	"hashlab/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	cfg := &config.Config{
		StorageDriver:   config.DriverFile,
		DataDir:         dataDir,
		CrackedPassword: "hello123",
		MinSeconds:      0.5,
		SpreadSeconds:   3,
		AttackConfigDir: filepath.Join(dataDir, "attacks"),
		LogLevel:        "error",
	}

	router := InitRouter(dao.NewFileArtifactDAO(dataDir), cfg,
		services.WithRandom(func() float64 { return 0.5 }))
	return router, dataDir
}

func do(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestHealthRoute(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"message":"Backend running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestGenerateHashOverwrites(t *testing.T) {
	router, dataDir := setupRouter(t)

	for _, password := range []string{"hello", "correct horse", "pässwörd"} {
		w := do(router, "POST", "/generate-hash", `{"password":"`+password+`"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, sha256Hex(password), resp["hash"])
		assert.Equal(t, sha256Hex(password)+"\n", testutil.ReadArtifact(t, dataDir, models.HashesArtifact))
	}
}

func TestGenerateHashRejectsEmptyPassword(t *testing.T) {
	router, dataDir := setupRouter(t)

	w := do(router, "POST", "/generate-hash", `{"password":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	for _, body := range []string{`{"password":""}`, `{}`} {
		w := do(router, "POST", "/generate-hash", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Password cannot be empty"}`, w.Body.String())
	}

	assert.Equal(t, sha256Hex("hello")+"\n", testutil.ReadArtifact(t, dataDir, models.HashesArtifact))
}

func TestSaveRulesWritesScriptAndMeta(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedRules string
		expectedMeta  string
		expectedLines int
	}{
		{
			name:          "Capitalize Reverse AppendDigits",
			body:          `{"capitalize":true,"reverse":true,"appendDigits":true}`,
			expectedRules: ":\nc\nr\n$1\n$2\n$3\n",
			expectedMeta:  `{"capitalize":true,"reverse":true,"appendDigits":true}`,
			expectedLines: 6,
		},
		{
			name:          "Every Flag In Fixed Order",
			body:          `{"appendDigits":true,"toggleCase":true,"duplicate":true,"reverse":true,"lowercase":true,"capitalize":true}`,
			expectedRules: ":\nc\nl\nr\nd\nt\n$1\n$2\n$3\n",
			expectedMeta:  `{"capitalize":true,"lowercase":true,"reverse":true,"duplicate":true,"toggleCase":true,"appendDigits":true}`,
			expectedLines: 9,
		},
		{
			name:          "Empty Object",
			body:          `{}`,
			expectedRules: ":\n",
			expectedMeta:  `{}`,
			expectedLines: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, dataDir := setupRouter(t)

			w := do(router, "POST", "/api/save-rules", tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp struct {
				Message   string          `json:"message"`
				Meta      json.RawMessage `json:"meta"`
				RuleLines int             `json:"ruleLines"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Rules saved", resp.Message)
			assert.JSONEq(t, tt.expectedMeta, string(resp.Meta))
			assert.Equal(t, tt.expectedLines, resp.RuleLines)

			assert.Equal(t, tt.expectedRules, testutil.ReadArtifact(t, dataDir, models.RuleSetArtifact))
			assert.JSONEq(t, tt.expectedMeta, testutil.ReadArtifact(t, dataDir, models.RuleMetaArtifact))
		})
	}
}

func TestAttackThenResults(t *testing.T) {
	router, dataDir := setupRouter(t)

	require.Equal(t, http.StatusOK, do(router, "POST", "/generate-hash", `{"password":"hello"}`).Code)
	require.Equal(t, http.StatusOK, do(router, "POST", "/api/save-rules", `{"reverse":true}`).Code)

	w := do(router, "POST", "/run-hashcat", `{"attackType":"SHA-256"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Attack completed (simulated)","attackType":"SHA-256","time":"2.00"}`, w.Body.String())

	elapsed := testutil.ReadArtifact(t, dataDir, models.ElapsedArtifact)
	assert.Equal(t, "2.00", elapsed)

	w = do(router, "GET", "/results", "")
	require.Equal(t, http.StatusOK, w.Code)

	var results []models.CrackResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, sha256Hex("hello"), results[0].Hash)
	assert.Equal(t, "hello123", results[0].Password)
	assert.Equal(t, elapsed, results[0].Time)
	assert.JSONEq(t, `{"reverse":true}`, string(results[0].Rules))
}

func TestAttackWithoutHashYieldsNoResults(t *testing.T) {
	router, dataDir := setupRouter(t)

	w := do(router, "POST", "/run-hashcat", `{"attackType":"MD5"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", testutil.ReadArtifact(t, dataDir, models.ResultArtifact))

	w = do(router, "GET", "/results", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAttackRequiresAttackType(t *testing.T) {
	router, dataDir := setupRouter(t)

	w := do(router, "POST", "/run-hashcat", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"attackType is required"}`, w.Body.String())
	testutil.AssertNoArtifact(t, dataDir, models.HistoryArtifact)
}

func TestHistoryGrowsByOnePerAttack(t *testing.T) {
	router, _ := setupRouter(t)

	attackTypes := []string{"SHA-256", "MD5", "SHA-256", "NTLM"}
	for _, attackType := range attackTypes {
		w := do(router, "POST", "/run-hashcat", `{"attackType":"`+attackType+`"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(router, "GET", "/history", "")
	require.Equal(t, http.StatusOK, w.Code)

	var history []models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, len(attackTypes))
	for i, entry := range history {
		assert.Equal(t, attackTypes[i], entry.AttackType)
		assert.Equal(t, 2.0, entry.Time)
		assert.NotEmpty(t, entry.Timestamp)
	}
}

func TestConcurrentAttacksKeepEveryHistoryEntry(t *testing.T) {
	router, _ := setupRouter(t)

	const runs = 20
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			do(router, "POST", "/run-hashcat", `{"attackType":"SHA-256"}`)
		}()
	}
	wg.Wait()

	w := do(router, "GET", "/history", "")
	require.Equal(t, http.StatusOK, w.Code)

	var history []models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history, runs)
}

func TestEmptyStateReads(t *testing.T) {
	router, _ := setupRouter(t)

	for _, path := range []string{"/results", "/history"} {
		w := do(router, "GET", path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}
}

func TestCorruptHistoryIsServerError(t *testing.T) {
	router, dataDir := setupRouter(t)
	testutil.WriteArtifact(t, dataDir, models.HistoryArtifact, "{not json")

	w := do(router, "GET", "/history", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to load history"}`, w.Body.String())

	w = do(router, "POST", "/run-hashcat", `{"attackType":"SHA-256"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAttackProfilesAndHomePage(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(router, "GET", "/api/attacks", "")
	require.Equal(t, http.StatusOK, w.Code)

	var profiles []models.AttackProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	assert.Equal(t, services.DefaultAttackProfiles, profiles)

	w = do(router, "GET", "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="SHA-256">SHA-256</option>`)
}

func TestCrossOriginAllowed(t *testing.T) {
	router, _ := setupRouter(t)

	req, _ := http.NewRequest("OPTIONS", "/generate-hash", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req, _ = http.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDEchoed(t *testing.T) {
	router, _ := setupRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	require.Equal(t, http.StatusOK, do(router, "POST", "/generate-hash", `{"password":"hello"}`).Code)

	w := do(router, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hashlab_hashes_generated_total")
	assert.Contains(t, w.Body.String(), `hashlab_http_requests_total{route="/generate-hash",status="200"}`)
}

func TestLogLevelReachesServices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hook := logtest.NewLocal(logger.Default().Logger)
	defer hook.Reset()

	dataDir := t.TempDir()
	cfg := &config.Config{
		StorageDriver:   config.DriverFile,
		DataDir:         dataDir,
		CrackedPassword: "hello123",
		MinSeconds:      0.5,
		SpreadSeconds:   3,
		AttackConfigDir: filepath.Join(dataDir, "attacks"),
		LogLevel:        "debug",
	}
	router := InitRouter(dao.NewFileArtifactDAO(dataDir), cfg)
	defer logger.SetLevel(logrus.InfoLevel)

	require.Equal(t, http.StatusOK, do(router, "POST", "/generate-hash", `{"password":"hello"}`).Code)

	assert.Equal(t, logrus.DebugLevel, logger.Default().GetLevel())
	var stored bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Stored hash" && entry.Level == logrus.DebugLevel {
			stored = true
		}
	}
	assert.True(t, stored, "service debug lines follow the configured level")
}
