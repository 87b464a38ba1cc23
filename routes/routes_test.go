package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/configs"
	"github.com/necropharaoh/qr-menu-system/entity"
	"github.com/necropharaoh/qr-menu-system/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.Table{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.WaiterCall{},
	))
	require.NoError(t, db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_waiter_calls_one_pending
		ON waiter_calls(table_id) WHERE status = 'pending' AND deleted_at IS NULL`).Error)

	cfg := &configs.Config{
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
		PublicBaseURL: "http://localhost:3000",
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg, services.NoopPublisher{})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedStaff(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{Username: "admin", Password: string(hash), Role: "admin"}).Error)
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	table := entity.Table{TableNumber: 1, Status: entity.TableAvailable}
	require.NoError(t, db.Create(&table).Error)

	body := fmt.Sprintf(`{"table_id":%d,"items":[{"menu_item_id":1,"quantity":2,"price":4500},{"menu_item_id":2,"quantity":1,"price":1500}]}`, table.ID)
	w := doJSON(t, r, http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var out struct {
		Data struct {
			ID          uint  `json:"id"`
			TotalAmount int64 `json:"total_amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, int64(10500), out.Data.TotalAmount)

	// empty items
	w = doJSON(t, r, http.MethodPost, "/api/orders", fmt.Sprintf(`{"table_id":%d,"items":[]}`, table.ID), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderStatusEndpointAuthAndErrors(t *testing.T) {
	r, db := newTestRouter(t)
	seedStaff(t, db)
	table := entity.Table{TableNumber: 1, Status: entity.TableAvailable}
	require.NoError(t, db.Create(&table).Error)
	order := entity.Order{TableID: table.ID, Status: entity.OrderPending, TotalAmount: 100}
	require.NoError(t, db.Create(&order).Error)

	path := fmt.Sprintf("/api/orders/%d/status", order.ID)

	// staff-only
	w := doJSON(t, r, http.MethodPut, path, `{"status":"preparing"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r)

	w = doJSON(t, r, http.MethodPut, path, `{"status":"burnt"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/orders/99999/status", `{"status":"ready"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, path, `{"status":"preparing"}`, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWaiterCallConflictEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	table := entity.Table{TableNumber: 5, Status: entity.TableAvailable}
	require.NoError(t, db.Create(&table).Error)

	body := fmt.Sprintf(`{"table_id":%d}`, table.ID)
	w := doJSON(t, r, http.MethodPost, "/api/waiter", body, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/waiter", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestResolveAllEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	seedStaff(t, db)
	for n := 1; n <= 2; n++ {
		table := entity.Table{TableNumber: n, Status: entity.TableAvailable}
		require.NoError(t, db.Create(&table).Error)
		w := doJSON(t, r, http.MethodPost, "/api/waiter", fmt.Sprintf(`{"table_id":%d}`, table.ID), "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	token := login(t, r)
	w := doJSON(t, r, http.MethodPut, "/api/waiter/resolve-all", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Data struct {
			ResolvedCount int64 `json:"resolved_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, int64(2), out.Data.ResolvedCount)
}

func TestMenuManagementRequiresToken(t *testing.T) {
	r, db := newTestRouter(t)
	seedStaff(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/menu/categories", `{"name":"Desserts"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r)
	w = doJSON(t, r, http.MethodPost, "/api/menu/categories", `{"name":"Desserts"}`, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	// customers only see active categories
	w = doJSON(t, r, http.MethodGet, "/api/menu/categories", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
