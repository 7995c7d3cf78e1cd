package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/repository"
)

func init() {
	// cantidad y precio se escriben como números JSON nativos, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre un único documento JSON.
type InventoryRepo struct {
	path string
	log  zerolog.Logger
}

// NewInventoryRepository construye el adaptador para el documento en path.
func NewInventoryRepository(path string, log zerolog.Logger) *InventoryRepo {
	return &InventoryRepo{path: path, log: log}
}

// Path devuelve la ruta del documento.
func (r *InventoryRepo) Path() string { return r.path }

// Load lee el documento. Archivo inexistente o JSON inválido → inventario vacío (sin error).
func (r *InventoryRepo) Load() *entity.Inventory {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Warn().Err(err).Str("path", r.path).Msg("no se pudo leer el inventario, se inicia vacío")
		}
		return entity.NewInventory()
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return entity.NewInventory()
	}

	inv := entity.NewInventory()
	if err := json.Unmarshal(data, inv); err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("inventario con JSON inválido, se inicia vacío")
		return entity.NewInventory()
	}
	r.log.Debug().Int("productos", inv.Len()).Str("path", r.path).Msg("inventario cargado")
	return inv
}

// Save reescribe el documento completo (indentado, UTF-8 sin escapes).
// Escribe en un temporal del mismo directorio y lo renombra para no dejar un documento truncado.
func (r *InventoryRepo) Save(inv *entity.Inventory) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(inv); err != nil {
		return fmt.Errorf("codificar inventario: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".stock-*.json")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("permisos del temporal: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir inventario: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar %s: %w", r.path, err)
	}
	r.log.Debug().Int("productos", inv.Len()).Str("path", r.path).Msg("inventario guardado")
	return nil
}
