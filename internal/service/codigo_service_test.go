package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerar_DoceDigitos(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	codigo, err := env.codigos.Generar(ctx)
	require.NoError(t, err)
	require.Len(t, codigo, 12)
	for _, r := range codigo {
		assert.True(t, r >= '0' && r <= '9', "codigo %q contiene un carácter no numérico", codigo)
	}

	// The code is reserved immediately, before any record references it.
	existe, err := env.codigosRepo.Exists(ctx, codigo)
	require.NoError(t, err)
	assert.True(t, existe)
}

func TestGenerar_SinRepetidos(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	vistos := make(map[string]bool)
	for i := 0; i < 50; i++ {
		codigo, err := env.codigos.Generar(ctx)
		require.NoError(t, err)
		require.False(t, vistos[codigo], "codigo repetido: %s", codigo)
		vistos[codigo] = true
	}
}

func TestGenerarLote_CantidadYImagenes(t *testing.T) {
	env := newTestEnv(t)

	codigos, err := env.codigos.GenerarLote(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, codigos, 5)

	for _, codigo := range codigos {
		assert.True(t, env.renderer.Exists(codigo), "falta la imagen de %s", codigo)
	}
}

func TestGenerarLote_CantidadMinimaUno(t *testing.T) {
	env := newTestEnv(t)

	codigos, err := env.codigos.GenerarLote(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, codigos, 1)
}

func TestLiberar_PermiteReutilizar(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	codigo, err := env.codigos.Generar(ctx)
	require.NoError(t, err)

	require.NoError(t, env.codigos.Liberar(ctx, codigo))

	existe, err := env.codigosRepo.Exists(ctx, codigo)
	require.NoError(t, err)
	assert.False(t, existe, "el código liberado sigue reservado")
}
