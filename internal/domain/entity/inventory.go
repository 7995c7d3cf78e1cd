package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry par clave de identidad → producto, en orden de inserción.
type Entry struct {
	Key     string
	Product *Product
}

// Inventory mapea clave de identidad → Product preservando el orden de inserción.
// Se pasa explícitamente a cada operación; no hay estado global.
type Inventory struct {
	items *orderedmap.OrderedMap[string, *Product]
}

// NewInventory crea un inventario vacío.
func NewInventory() *Inventory {
	return &Inventory{items: orderedmap.New[string, *Product]()}
}

func (inv *Inventory) Len() int { return inv.items.Len() }

func (inv *Inventory) IsEmpty() bool { return inv.items.Len() == 0 }

// Get devuelve el producto de la clave (el puntero es el almacenado: mutarlo muta el inventario).
func (inv *Inventory) Get(key string) (*Product, bool) {
	return inv.items.Get(key)
}

func (inv *Inventory) Has(key string) bool {
	_, ok := inv.items.Get(key)
	return ok
}

// Put inserta al final o reemplaza conservando la posición si la clave ya existe.
func (inv *Inventory) Put(key string, p *Product) {
	inv.items.Set(key, p)
}

// Delete elimina la clave y devuelve el producto eliminado.
func (inv *Inventory) Delete(key string) (*Product, bool) {
	return inv.items.Delete(key)
}

// Rename cambia la clave de un producto manteniendo su posición.
func (inv *Inventory) Rename(oldKey, newKey string) error {
	if oldKey == newKey {
		return nil
	}
	p, ok := inv.items.Get(oldKey)
	if !ok {
		return fmt.Errorf("renombrar %q: clave inexistente", oldKey)
	}
	if inv.Has(newKey) {
		return fmt.Errorf("renombrar %q: la clave %q ya existe", oldKey, newKey)
	}
	inv.items.Set(newKey, p)
	if err := inv.items.MoveBefore(newKey, oldKey); err != nil {
		return fmt.Errorf("renombrar %q: %w", oldKey, err)
	}
	inv.items.Delete(oldKey)
	return nil
}

// Entries devuelve los pares en orden de inserción.
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, 0, inv.items.Len())
	for pair := inv.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Key: pair.Key, Product: pair.Value})
	}
	return out
}

// Keys devuelve las claves en orden de inserción.
func (inv *Inventory) Keys() []string {
	out := make([]string, 0, inv.items.Len())
	for pair := inv.items.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// MarshalJSON serializa como objeto JSON respetando el orden de inserción.
// Claves y valores se escriben sin escapar <, > ni &.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for pair := inv.items.Oldest(); pair != nil; pair = pair.Next() {
		if pair != inv.items.Oldest() {
			buf.WriteByte(',')
		}
		if err := enc.Encode(pair.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(pair.Value); err != nil {
			return nil, fmt.Errorf("producto %q: %w", pair.Key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodifica un objeto JSON conservando el orden del documento.
// Las entradas null se descartan.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	items := orderedmap.New[string, *Product]()
	if err := items.UnmarshalJSON(data); err != nil {
		return err
	}
	for pair := items.Oldest(); pair != nil; {
		next := pair.Next()
		if pair.Value == nil {
			items.Delete(pair.Key)
		}
		pair = next
	}
	inv.items = items
	return nil
}

var (
	_ json.Marshaler   = (*Inventory)(nil)
	_ json.Unmarshaler = (*Inventory)(nil)
)
