package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func echoDispatcher() *Dispatcher {
	d := NewDispatcher(zap.NewNop().Sugar())
	d.Handle("sum", func(ctx context.Context, args Args) (any, error) {
		if err := args.Expect(2); err != nil {
			return nil, err
		}
		a, err := args.Int64(0)
		if err != nil {
			return nil, err
		}
		b, err := args.Int64(1)
		if err != nil {
			return nil, err
		}
		return a + b, nil
	})
	d.Handle("fail", func(ctx context.Context, args Args) (any, error) {
		return nil, errs.Store("select memo", errors.New("disk I/O error"))
	})
	return d
}

func TestDispatcherUnknownOperation(t *testing.T) {
	d := echoDispatcher()

	_, err := d.Invoke(context.Background(), "nope", nil)
	var bridgeErr *errs.BridgeError
	require.True(t, errors.As(err, &bridgeErr))
	require.Equal(t, "nope", bridgeErr.Op)
}

func TestDispatcherArguments(t *testing.T) {
	d := echoDispatcher()
	ctx := context.Background()

	args, err := NewArgs(2, 3)
	require.NoError(t, err)
	got, err := d.Invoke(ctx, "sum", args)
	require.NoError(t, err)
	require.Equal(t, int64(5), got)

	args, err = NewArgs(2)
	require.NoError(t, err)
	_, err = d.Invoke(ctx, "sum", args)
	var bridgeErr *errs.BridgeError
	require.True(t, errors.As(err, &bridgeErr))
	require.Equal(t, "sum", bridgeErr.Op)

	args, err = NewArgs("two", 3)
	require.NoError(t, err)
	_, err = d.Invoke(ctx, "sum", args)
	require.Equal(t, errs.KindBridge, errs.KindOf(err))
}

func TestDispatcherKeepsStoreErrors(t *testing.T) {
	d := echoDispatcher()

	_, err := d.Invoke(context.Background(), "fail", nil)
	var storeErr *errs.StoreError
	require.True(t, errors.As(err, &storeErr))
	require.Equal(t, "select memo", storeErr.Op)
}

func TestOperations(t *testing.T) {
	require.Equal(t, []string{"fail", "sum"}, echoDispatcher().Operations())
}

func TestLocalClient(t *testing.T) {
	c := LocalClient{Dispatcher: echoDispatcher()}

	raw, err := c.Call(context.Background(), "sum", 40, 2)
	require.NoError(t, err)
	require.JSONEq(t, "42", string(raw))

	_, err = c.Call(context.Background(), "fail")
	require.Equal(t, errs.KindStore, errs.KindOf(err))
}

func TestHTTPClient(t *testing.T) {
	var requestIDs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		requestIDs = append(requestIDs, r.Header.Get(RequestIDHeader))

		body, _ := io.ReadAll(r.Body)
		var args Args
		_ = json.Unmarshal(body, &args)

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/bridge/sum":
			got, _ := echoDispatcher().Invoke(r.Context(), "sum", args)
			_ = json.NewEncoder(w).Encode(Reply{Result: got})
		case "/v1/bridge/fail":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"select memo: disk I/O error","kind":"store","op":"selectMemo"}`))
		case "/v1/bridge/bad":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"failed on the 'required' rule","kind":"input","field":"name"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", time.Second)
	ctx := context.Background()

	raw, err := c.Call(ctx, "sum", 1, 2)
	require.NoError(t, err)
	require.JSONEq(t, "3", string(raw))

	_, err = c.Call(ctx, "fail")
	require.Equal(t, errs.KindStore, errs.KindOf(err))
	require.Contains(t, err.Error(), "disk I/O error")

	_, err = c.Call(ctx, "bad")
	require.Equal(t, errs.KindInput, errs.KindOf(err))
	var inputErr *errs.InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, "name", inputErr.Field)
	require.Equal(t, "invalid name: failed on the 'required' rule", err.Error())

	_, err = c.Call(ctx, "gone")
	require.Equal(t, errs.KindBridge, errs.KindOf(err))

	require.Len(t, requestIDs, 4)
	require.NotEmpty(t, requestIDs[0])
	require.NotEqual(t, requestIDs[0], requestIDs[1])
}

func TestHTTPClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, time.Second).Call(context.Background(), SelectAllNotebook)
	require.Equal(t, errs.KindBridge, errs.KindOf(err))
}
