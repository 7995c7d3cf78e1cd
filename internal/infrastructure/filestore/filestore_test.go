package filestore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/infrastructure/filestore"
)

func sample() *entity.Inventory {
	inv := entity.NewInventory()
	for _, p := range []*entity.Product{
		{
			Name: "Yerba", Brand: "Playadito", Presentation: "1kg",
			Quantity: decimal.NewFromInt(8), Price: decimal.RequireFromString("3450.75"),
			MinStock: entity.Int64Ptr(2), IntakeDate: entity.StringPtr("01/07/2025"),
			Expiry: entity.StringPtr("01/07/2026"), Category: entity.CategoryFood,
		},
		{
			Name: "Detergente", Brand: "Magistral", Presentation: "750ml",
			Quantity: decimal.NewFromInt(3), Price: decimal.NewFromInt(1900),
			MinStock: entity.Int64Ptr(3), IntakeDate: entity.StringPtr("02/07/2025"),
			Expiry: entity.StringPtr("02/07/2027"), Category: entity.CategoryCleaning,
		},
	} {
		inv.Put(p.Key(), p)
	}
	return inv
}

// ── Documento de inventario ───────────────────────────────────────────────────

func TestInventoryRepo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Data", "stock.json")
	repo := filestore.NewInventoryRepository(path, zerolog.Nop())
	want := sample()

	require.NoError(t, repo.Save(want))
	got := repo.Load()

	require.Equal(t, want.Keys(), got.Keys())
	for _, e := range want.Entries() {
		g, ok := got.Get(e.Key)
		require.True(t, ok)
		assert.Equal(t, e.Product.Name, g.Name)
		assert.Equal(t, e.Product.Brand, g.Brand)
		assert.Equal(t, e.Product.Presentation, g.Presentation)
		assert.True(t, e.Product.Quantity.Equal(g.Quantity))
		assert.True(t, e.Product.Price.Equal(g.Price))
		assert.Equal(t, *e.Product.MinStock, *g.MinStock)
		assert.Equal(t, *e.Product.IntakeDate, *g.IntakeDate)
		assert.Equal(t, *e.Product.Expiry, *g.Expiry)
		assert.Equal(t, e.Product.Category, g.Category)
	}
}

func TestInventoryRepo_FormatoDelDocumento(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.json")
	repo := filestore.NewInventoryRepository(path, zerolog.Nop())
	require.NoError(t, repo.Save(sample()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(raw)

	assert.Contains(t, doc, `"precio": 3450.75`, "números JSON nativos")
	assert.Contains(t, doc, `"cantidad": 8`)
	assert.Contains(t, doc, `"fecha_ingreso": "01/07/2025"`)
	assert.Contains(t, doc, "\n    \"Yerba(Playadito) - 1kg\": {", "indentación de 4 espacios")

	var generic map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.IsType(t, float64(0), generic["Yerba(Playadito) - 1kg"]["cantidad"])
}

func TestInventoryRepo_CaracteresEspecialesSinEscapar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.json")
	repo := filestore.NewInventoryRepository(path, zerolog.Nop())
	p := &entity.Product{
		Name: "Jabón <P&G>", Brand: "P&G", Presentation: "pack x 6",
		Quantity: decimal.NewFromInt(6), Price: decimal.NewFromInt(990),
		MinStock: entity.Int64Ptr(1), IntakeDate: entity.StringPtr("01/07/2025"),
		Expiry: entity.StringPtr("01/07/2027"), Category: entity.CategoryCleaning,
	}
	inv := entity.NewInventory()
	inv.Put(p.Key(), p)
	require.NoError(t, repo.Save(inv))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(raw)

	assert.Contains(t, doc, `"Jabón <P&G>(P&G) - pack x 6": {`)
	assert.Contains(t, doc, `"marca": "P&G"`)
	for _, esc := range []string{`\u003c`, `\u003e`, `\u0026`} {
		assert.NotContains(t, doc, esc)
	}

	got, ok := repo.Load().Get(p.Key())
	require.True(t, ok)
	assert.Equal(t, "Jabón <P&G>", got.Name)
}

func TestInventoryRepo_ArchivoInexistente(t *testing.T) {
	repo := filestore.NewInventoryRepository(filepath.Join(t.TempDir(), "no-existe.json"), zerolog.Nop())
	inv := repo.Load()
	require.NotNil(t, inv)
	assert.True(t, inv.IsEmpty())
}

func TestInventoryRepo_JSONInvalido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	inv := filestore.NewInventoryRepository(path, zerolog.Nop()).Load()
	require.NotNil(t, inv)
	assert.True(t, inv.IsEmpty())
}

func TestInventoryRepo_EliminarPersiste(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.json")
	repo := filestore.NewInventoryRepository(path, zerolog.Nop())
	inv := sample()
	key := entity.BuildKey("Yerba", "Playadito", "1kg")

	_, ok := inv.Delete(key)
	require.True(t, ok)
	require.NoError(t, repo.Save(inv))

	assert.False(t, repo.Load().Has(key))
}

// ── Historial ─────────────────────────────────────────────────────────────────

func TestEventLog_FormatoYAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Data", "registro.log")
	clock := time.Date(2025, time.July, 14, 9, 5, 7, 0, time.Local)
	log := filestore.NewEventLog(path, func() time.Time { return clock }, zerolog.Nop())

	require.NoError(t, log.Record("🆕 Se agregó un nuevo producto: 'Yerba(Playadito) - 1kg'."))
	clock = clock.Add(time.Hour)
	require.NoError(t, log.Record("➕ Se agregó cantidad a 'Yerba(Playadito) - 1kg'."))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[14/07/2025 09:05:07] 🆕 Se agregó un nuevo producto: 'Yerba(Playadito) - 1kg'.", lines[0])
	assert.Equal(t, "[14/07/2025 10:05:07] ➕ Se agregó cantidad a 'Yerba(Playadito) - 1kg'.", lines[1])
}
