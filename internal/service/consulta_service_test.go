package service

import (
	"context"
	"testing"

	"github.com/44Loqueinor12345/Inventario/internal/apierror"
	"github.com/44Loqueinor12345/Inventario/internal/dto"
	"github.com/44Loqueinor12345/Inventario/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) consultaService() ConsultaService {
	return NewConsultaService(env.grupos, env.dispositivos, env.productos, env.materiales)
}

func TestBuscarPorCodigo_Dispositivo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alta, err := env.dispositivoService().Crear(ctx, crearDispositivoBase(env.grupoID(t, "EC")), nil)
	require.NoError(t, err)

	resp, err := env.consultaService().BuscarPorCodigo(ctx, alta.CodigoBarras)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, model.TipoDispositivo, resp.Tipo)
	assert.Equal(t, alta.CodigoBarras, resp.CodigoBarras)
	assert.Equal(t, "EC", resp.GrupoNombre)
	require.NotNil(t, resp.Dispositivo)
	assert.Nil(t, resp.Producto)
	assert.Nil(t, resp.Material)
	assert.Equal(t, "Ana", resp.Dispositivo.Responsable)
}

func TestBuscarPorCodigo_ProductoYMaterial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	altaP, err := env.productoVentaService().Crear(ctx, dto.CrearProductoVentaRequest{
		GrupoID:     env.grupoID(t, "GL"),
		Marca:       "DulceCo",
		Descripcion: "Caja",
		Costo:       "10",
	})
	require.NoError(t, err)

	altaM, err := env.materialGeneralService().Crear(ctx, dto.CrearMaterialGeneralRequest{
		GrupoID: env.grupoID(t, "RH"),
		Nombre:  "Silla",
		Tipo:    "mobiliario",
		Precio:  "100",
	})
	require.NoError(t, err)

	consulta := env.consultaService()

	respP, err := consulta.BuscarPorCodigo(ctx, altaP.CodigoBarras)
	require.NoError(t, err)
	assert.Equal(t, model.TipoProductoVenta, respP.Tipo)
	assert.Equal(t, "GL", respP.GrupoNombre)
	require.NotNil(t, respP.Producto)

	respM, err := consulta.BuscarPorCodigo(ctx, altaM.CodigoBarras)
	require.NoError(t, err)
	assert.Equal(t, model.TipoMaterialGeneral, respM.Tipo)
	assert.Equal(t, "RH", respM.GrupoNombre)
	require.NotNil(t, respM.Material)
}

func TestBuscarPorCodigo_NoEncontrado(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.consultaService().BuscarPorCodigo(context.Background(), "000000000000")
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
	assert.Equal(t, "Producto no encontrado", err.Error())
}

func TestBuscarPorCodigo_Vacio(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.consultaService().BuscarPorCodigo(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestBuscarPorCodigo_DespuesDeEliminar(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.dispositivoService()

	alta, err := svc.Crear(ctx, crearDispositivoBase(env.grupoID(t, "EC")), nil)
	require.NoError(t, err)

	d, err := env.dispositivos.FindByCodigoBarras(ctx, alta.CodigoBarras)
	require.NoError(t, err)
	require.NoError(t, svc.Eliminar(ctx, d.ID))

	_, err = env.consultaService().BuscarPorCodigo(ctx, alta.CodigoBarras)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestListarPorGrupo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.dispositivoService().Crear(ctx, crearDispositivoBase(env.grupoID(t, "EC")), nil)
	require.NoError(t, err)
	_, err = env.productoVentaService().Crear(ctx, dto.CrearProductoVentaRequest{
		GrupoID:     env.grupoID(t, "EC"),
		Marca:       "DulceCo",
		Descripcion: "Caja",
		Costo:       "10",
	})
	require.NoError(t, err)
	// A record in another group must not leak in.
	_, err = env.materialGeneralService().Crear(ctx, dto.CrearMaterialGeneralRequest{
		GrupoID: env.grupoID(t, "RH"),
		Nombre:  "Silla",
		Tipo:    "mobiliario",
		Precio:  "100",
	})
	require.NoError(t, err)

	resp, err := env.consultaService().ListarPorGrupo(ctx, "EC")
	require.NoError(t, err)

	assert.Equal(t, "EC", resp.Grupo.Nombre)
	assert.Len(t, resp.Dispositivos, 1)
	assert.Len(t, resp.ProductosVenta, 1)
	assert.Empty(t, resp.MaterialGeneral)
}

func TestListarPorGrupo_Vacio(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.consultaService().ListarPorGrupo(context.Background(), "PCG")
	require.NoError(t, err)

	// Empty group yields three empty slices, never nil and never an error.
	assert.NotNil(t, resp.Dispositivos)
	assert.NotNil(t, resp.ProductosVenta)
	assert.NotNil(t, resp.MaterialGeneral)
	assert.Empty(t, resp.Dispositivos)
}

func TestListarPorGrupo_Desconocido(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.consultaService().ListarPorGrupo(context.Background(), "NOEXISTE")
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
	assert.Equal(t, "Grupo no encontrado", err.Error())
}
