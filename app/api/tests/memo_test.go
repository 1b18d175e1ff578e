package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/memo-api/app/api/handlers"
	"github.com/ribgsilva/memo-api/bridge"
	"github.com/ribgsilva/memo-api/business/v1/gateway"
	"github.com/ribgsilva/memo-api/business/v1/memo"
	"github.com/ribgsilva/memo-api/business/v1/notebook"
	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/platform/testenv"
	"github.com/ribgsilva/memo-api/sys"
	"github.com/stretchr/testify/require"
)

type MemoTests struct {
	app   http.Handler
	cache *miniredis.Miniredis
	res   *sys.Resources
	op    *bridge.DbOp
}

func setup(t *testing.T) *MemoTests {
	gin.SetMode(gin.TestMode)

	// =======================================================================================================
	// Setup resources
	res, s := testenv.NewWithCache(t)

	d := bridge.NewDispatcher(res.Log)
	gateway.Register(d, res)

	// =======================================================================================================
	// Setup router
	engine := gin.New()
	handlers.MapDefaults(engine, res)
	handlers.MapApi(engine, d, res)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return &MemoTests{
		app:   engine,
		cache: s,
		res:   res,
		op:    bridge.NewDbOp(bridge.NewHTTPClient(srv.URL, 5*time.Second)),
	}
}

func TestMemo(t *testing.T) {
	mt := setup(t)

	// =======================================================================================================
	// Database setup, through the bridge
	ctx := context.Background()
	require.NoError(t, mt.op.CreateDb(ctx))

	work, err := mt.op.InsertNotebook(ctx, "Work")
	require.NoError(t, err)
	require.Equal(t, int64(1), work.Id)

	hello, err := mt.op.InsertMemo(ctx, "<p>hello</p>", work.Id)
	require.NoError(t, err)
	require.Equal(t, int64(1), hello.Id)
	require.Equal(t, work.Id, hello.NotebookId)

	// =======================================================================================================
	// Run tests

	mt.healthcheck200(t)
	mt.getMemo200(t)
	if !mt.cache.Exists("memos.1") {
		t.Fatalf("memo 1 not in cache")
	}
	mt.getMemo200(t)
	mt.getMemo404(t, 999)
	mt.getMemo400(t)
	mt.listNotebooks200(t, work)
	mt.listNotebookMemos200(t, hello)

	require.NoError(t, mt.op.DeleteMemo(ctx, hello.Id))
	if mt.cache.Exists("memos.1") {
		t.Fatalf("memo 1 still in cache after delete")
	}
	mt.getMemo404(t, hello.Id)
}

func TestBridgeOverHTTP(t *testing.T) {
	mt := setup(t)
	ctx := context.Background()

	last, err := mt.op.SelectLastNotebook(ctx)
	require.NoError(t, err)
	require.Nil(t, last)

	a, err := mt.op.InsertNotebook(ctx, "A")
	require.NoError(t, err)
	b, err := mt.op.InsertNotebook(ctx, "B")
	require.NoError(t, err)

	_, err = mt.op.InsertMemo(ctx, "a1", a.Id)
	require.NoError(t, err)
	_, err = mt.op.InsertMemo(ctx, "b1", b.Id)
	require.NoError(t, err)
	_, err = mt.op.InsertMemo(ctx, "a2", a.Id)
	require.NoError(t, err)

	memos, err := mt.op.SelectMemo(ctx, a.Id)
	require.NoError(t, err)
	require.Len(t, memos, 2)
	require.Equal(t, "a1", memos[0].Content)
	require.Equal(t, "a2", memos[1].Content)

	all, err := mt.op.SelectAllMemo(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	lastMemo, err := mt.op.SelectLastMemo(ctx)
	require.NoError(t, err)
	require.NotNil(t, lastMemo)
	require.Equal(t, "a2", lastMemo.Content)

	require.NoError(t, mt.op.DeleteNotebook(ctx, b.Id))
	notebooks, err := mt.op.SelectAllNotebook(ctx)
	require.NoError(t, err)
	require.Len(t, notebooks, 1)

	all, err = mt.op.SelectAllMemo(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3, "memos of a deleted notebook are kept")
}

func TestBridgeErrorsOverHTTP(t *testing.T) {
	mt := setup(t)
	ctx := context.Background()

	_, err := mt.op.InsertNotebook(ctx, "")
	require.Error(t, err)
	require.Equal(t, errs.KindInput, errs.KindOf(err))

	_, err = mt.op.InsertMemo(ctx, "orphan", 0)
	require.Error(t, err)
	require.Equal(t, errs.KindInput, errs.KindOf(err))
	var inputErr *errs.InputError
	require.True(t, errors.As(err, &inputErr))
	require.Equal(t, "notebook_id", inputErr.Field)
	require.Equal(t, "invalid notebook_id: failed on the 'gt' rule", err.Error())

	r := httptest.NewRequest(http.MethodPost, "/v1/bridge/dropEverything", nil)
	w := httptest.NewRecorder()
	mt.app.ServeHTTP(w, r)
	require.Equal(t, http.StatusNotFound, w.Code)

	database := mt.res.Database
	require.NoError(t, database.Close())

	_, err = mt.op.SelectAllNotebook(ctx)
	require.Error(t, err)
	require.Equal(t, errs.KindStore, errs.KindOf(err))

	var storeErr *errs.StoreError
	require.True(t, errors.As(err, &storeErr))
	require.Equal(t, "selectAllNotebook", storeErr.Op)
}

func (mt *MemoTests) healthcheck200(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	w := httptest.NewRecorder()

	mt.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test healthcheck200: Should receive a status code of 200 for the response : %v", w.Code)
	}
}

func (mt *MemoTests) getMemo200(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/memos/1", nil)
	w := httptest.NewRecorder()

	mt.app.ServeHTTP(w, r)

	var resp memo.Memo
	if w.Code != http.StatusOK {
		t.Fatalf("Test getMemo200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test getMemo200: Should be able to unmarshal the response : %v", err)
	}

	if resp.Id != 1 {
		t.Fatalf("Test getMemo200: Should have received \"1\" as id in the response: %v", resp)
	}
	if resp.Content != "<p>hello</p>" {
		t.Fatalf("Test getMemo200: Should have received \"<p>hello</p>\" as content in the response: %v", resp)
	}
	if resp.NotebookId != 1 {
		t.Fatalf("Test getMemo200: Should have received \"1\" as notebook_id in the response: %v", resp)
	}
}

func (mt *MemoTests) getMemo404(t *testing.T, id int64) {
	r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/memos/%d", id), nil)
	w := httptest.NewRecorder()

	mt.app.ServeHTTP(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Test getMemo404: Should receive a status code of 404 for the response : %v", w.Code)
	}
}

func (mt *MemoTests) getMemo400(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/memos/abc", nil)
	w := httptest.NewRecorder()

	mt.app.ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test getMemo400: Should receive a status code of 400 for the response : %v", w.Code)
	}
}

func (mt *MemoTests) listNotebooks200(t *testing.T, want notebook.Notebook) {
	r := httptest.NewRequest(http.MethodGet, "/v1/notebooks", nil)
	w := httptest.NewRecorder()

	mt.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test listNotebooks200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	var resp []notebook.Notebook
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test listNotebooks200: Should be able to unmarshal the response : %v", err)
	}
	if len(resp) != 1 || resp[0].Id != want.Id || resp[0].Name != want.Name {
		t.Fatalf("Test listNotebooks200: Should have received only %v in the response: %v", want, resp)
	}
}

func (mt *MemoTests) listNotebookMemos200(t *testing.T, want memo.Memo) {
	r := httptest.NewRequest(http.MethodGet, "/v1/notebooks/1/memos", nil)
	w := httptest.NewRecorder()

	mt.app.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Test listNotebookMemos200: Should receive a status code of 200 for the response : %v", w.Code)
	}

	var resp []memo.Memo
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Test listNotebookMemos200: Should be able to unmarshal the response : %v", err)
	}
	if len(resp) != 1 || resp[0].Id != want.Id || resp[0].Content != want.Content {
		t.Fatalf("Test listNotebookMemos200: Should have received only %v in the response: %v", want, resp)
	}
}
