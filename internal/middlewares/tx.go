package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
	"github.com/sbilibin2017/gw-currency-exchange/internal/models"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The response is buffered: statuses below 400 commit, every other status rolls the
// transaction back. Callbacks registered with AfterCommit run only after a successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeUnavailable(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := context.WithValue(setTxToContext(r.Context(), tx), hooksKey, hooks)

			bw := &bufferedWriter{header: make(http.Header), statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeUnavailable(w)
				return
			}
			bw.flush(w)
			hooks.run()
		})
	}
}

func writeUnavailable(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(models.ExchangeErrorResponse{Error: models.ErrWalletUnavailable.Error()})
}

// bufferedWriter holds the response until the transaction outcome is known.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range bw.header {
		w.Header()[k] = v
	}
	w.WriteHeader(bw.statusCode)
	_, _ = w.Write(bw.body.Bytes())
}

type commitHooks struct {
	fns []func()
}

func (h *commitHooks) run() {
	for _, fn := range h.fns {
		fn()
	}
}

// AfterCommit schedules fn to run once the request transaction has committed.
// It reports false, without scheduling fn, when ctx carries no request transaction.
func AfterCommit(ctx context.Context, fn func()) bool {
	hooks, ok := ctx.Value(hooksKey).(*commitHooks)
	if !ok {
		return false
	}
	hooks.fns = append(hooks.fns, fn)
	return true
}

// contextKey is an unexported type for keys in context
type contextKey int

const (
	txKey contextKey = iota
	hooksKey
)

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
