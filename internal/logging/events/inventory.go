package events

import "github.com/atomicstack/takeoff/internal/logging"

type InventoryTracer struct{}

type CatalogTracer struct{}

var (
	Inventory = InventoryTracer{}
	Catalog   = CatalogTracer{}
)

func (InventoryTracer) Add(id, label string, qty int) {
	logging.Trace("inventory.add", map[string]interface{}{"id": id, "label": label, "qty": qty})
}

func (InventoryTracer) Remove(id string) {
	logging.Trace("inventory.remove", map[string]interface{}{"id": id})
}

func (InventoryTracer) Quantity(id string, qty int) {
	logging.Trace("inventory.qty", map[string]interface{}{"id": id, "qty": qty})
}

func (InventoryTracer) Clear(count int) {
	logging.Trace("inventory.clear", map[string]interface{}{"count": count})
}

func (InventoryTracer) Export(format, path string, rows int) {
	logging.Trace("inventory.export", map[string]interface{}{"format": format, "path": path, "rows": rows})
}

func (CatalogTracer) Reload(path string, types, transoms int) {
	logging.Trace("catalog.reload", map[string]interface{}{"path": path, "types": types, "transoms": transoms})
}

func (CatalogTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.error", map[string]interface{}{"path": path, "error": err.Error()})
}
