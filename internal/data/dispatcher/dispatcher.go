package dispatcher

import (
	"github.com/atomicstack/takeoff/internal/backend"
	"github.com/atomicstack/takeoff/internal/catalog"
	"github.com/atomicstack/takeoff/internal/logging/events"
	"github.com/atomicstack/takeoff/internal/state"
)

type Result struct {
	CatalogUpdated bool
	Err            error
}

type Dispatcher struct {
	catalogs state.CatalogStore
}

func New(c state.CatalogStore) *Dispatcher {
	return &Dispatcher{catalogs: c}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Catalog.Error(evt.Path, evt.Err)
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindCatalog:
		if cat, ok := evt.Data.(*catalog.Catalog); ok && cat != nil {
			d.catalogs.SetCatalog(cat)
			d.catalogs.SetSource(evt.Path)
			events.Catalog.Reload(evt.Path, len(cat.Types), len(cat.Transoms))
			res.CatalogUpdated = true
		}
	}
	return res
}
