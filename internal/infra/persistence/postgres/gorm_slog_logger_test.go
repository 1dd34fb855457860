package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"buyhive/config"
	deliverycontext "buyhive/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "items" WHERE user_id = 'u1'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		elapsed time.Duration
		want    string
		wantNot string
	}{
		{
			name: "failure",
			err:  errors.New("connection reset"),
			want: "GORM query failed",
		},
		{
			name:    "not found is quiet",
			err:     gorm.ErrRecordNotFound,
			wantNot: "GORM query failed",
		},
		{
			name:    "duplicate url is quiet",
			err:     errors.New(`ERROR: duplicate key value violates unique constraint "idx_items_user_url" (SQLSTATE 23505)`),
			wantNot: "GORM query failed",
		},
		{
			name:    "slow",
			elapsed: time.Second,
			want:    "GORM slow query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(newCapturingLogger(&buf, slog.LevelInfo), &config.Config{})

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newCapturingLogger(&base, slog.LevelInfo), &config.Config{})

	reqLogger := newCapturingLogger(&scoped, slog.LevelInfo).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("connection reset"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newCapturingLogger(&buf, slog.LevelDebug), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, buf.String())
}
