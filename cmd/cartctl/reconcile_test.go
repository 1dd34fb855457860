package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"buyhive/internal/domain/reconcile"
	mockUsecase "buyhive/internal/mocks/usecase"
	"buyhive/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileUsers_KeepsInputOrder(t *testing.T) {
	reconciler := mockUsecase.NewMockReconcileUsecase(t)
	for _, userID := range []string{"u1", "u2", "u3"} {
		reconciler.EXPECT().Reconcile(mock.Anything, userID, true).
			Return(&usecase.ReconcileReport{UserID: userID, Plan: &reconcile.Plan{UserID: userID}, Applied: true}, nil)
	}

	reports, err := reconcileUsers(context.Background(), reconciler, []string{"u1", "u2", "u3"}, true, 2)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for idx, userID := range []string{"u1", "u2", "u3"} {
		assert.Equal(t, userID, reports[idx].UserID)
	}
}

func TestReconcileUsers_Error(t *testing.T) {
	reconciler := mockUsecase.NewMockReconcileUsecase(t)
	reconciler.EXPECT().Reconcile(mock.Anything, "u1", false).Return(nil, errors.New("store down"))

	_, err := reconcileUsers(context.Background(), reconciler, []string{"u1"}, false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconcile user u1")
}

func TestWriteReports_Text(t *testing.T) {
	reports := []*usecase.ReconcileReport{
		{UserID: "u1", Plan: &reconcile.Plan{UserID: "u1"}},
		{
			UserID: "u2",
			Plan: &reconcile.Plan{
				UserID:      "u2",
				UserCartIDs: []string{"c1"},
				CartFixes:   []reconcile.CartFix{{CartID: "c1", ItemIDs: []string{"i1"}}},
				Orphans:     []string{"i9"},
				Parked:      []string{"i5"},
			},
			Applied: true,
			Failed:  1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeReports(&buf, "text", reports))

	out := buf.String()
	assert.Contains(t, out, "u1: consistent\n")
	assert.Contains(t, out, "u2: applied\n")
	assert.Contains(t, out, "  user carts -> [c1]\n")
	assert.Contains(t, out, "  cart c1 items -> [i1]\n")
	assert.Contains(t, out, "  item i9 lost every cart\n")
	assert.Contains(t, out, "  item i5 is in no cart\n")
	assert.Contains(t, out, "  1 writes failed\n")
}

func TestWriteReports_JSON(t *testing.T) {
	reports := []*usecase.ReconcileReport{{UserID: "u1", Plan: &reconcile.Plan{UserID: "u1"}}}

	var buf bytes.Buffer
	require.NoError(t, writeReports(&buf, "json", reports))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "u1", decoded[0]["user_id"])
}

func TestRequireTarget(t *testing.T) {
	require.Error(t, requireTarget(nil, false))
	require.Error(t, requireTarget([]string{"u1"}, true))
	require.NoError(t, requireTarget([]string{"u1"}, false))
	require.NoError(t, requireTarget(nil, true))
}

func TestRootCommand_RejectsFormat(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"check", "--all", "--format", "xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
