package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("costo", "campo requerido"), http.StatusBadRequest},
		{Constraint("vpn en uso"), http.StatusConflict},
		{NotFound("no existe"), http.StatusNotFound},
		{StoreBusy(), http.StatusServiceUnavailable},
		{Store("fallo"), http.StatusInternalServerError},
		{errors.New("error plano"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), "error: %v", tc.err)
	}
}

func TestFromStore_Locked(t *testing.T) {
	for _, msg := range []string{"database is locked", "database is busy", "SQLITE_BUSY: database is Locked"} {
		err := FromStore(errors.New(msg))
		assert.Equal(t, KindStoreBusy, err.Kind, "mensaje: %s", msg)
		assert.True(t, Retryable(err))
	}
}

func TestFromStore_Otro(t *testing.T) {
	err := FromStore(errors.New("constraint failed"))
	assert.Equal(t, KindStore, err.Kind)
	assert.False(t, Retryable(err))
	assert.Contains(t, err.Message, "constraint failed")
}

func TestKindOf_Envuelto(t *testing.T) {
	wrapped := fmt.Errorf("contexto: %w", NotFound("no existe"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}
