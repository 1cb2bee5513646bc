package mesh

import "reflect"

// ExtraData holds at most one value per kind for a single element.
// The kind of a value is its Go type, so TexCoord and VertexNormal never
// collide even though both wrap vectors. The zero value is ready to use.
//
// Values are stored by pointer: GetOrCreateExtraData hands out a pointer that
// stays valid until the kind is erased or overwritten.
type ExtraData struct {
	values map[reflect.Type]any
}

// ExtraDataHolder is anything that exposes an element's extra data slot.
// ExtraData itself, VertexProxy and TriangleProxy all implement it.
type ExtraDataHolder interface {
	ExtraData() *ExtraData
}

// ExtraData returns d, so a bare container can be used where a holder is expected.
func (d *ExtraData) ExtraData() *ExtraData {
	return d
}

// Len returns the number of kinds stored.
func (d *ExtraData) Len() int {
	return len(d.values)
}

// IsEmpty reports whether no kind is stored.
func (d *ExtraData) IsEmpty() bool {
	return len(d.values) == 0
}

// Clear removes every stored kind.
func (d *ExtraData) Clear() {
	clear(d.values)
}

// clone copies every stored value into a new container. Values are copied by
// assignment, so a kind holding a slice or map shares its backing storage.
func (d *ExtraData) clone() ExtraData {
	if len(d.values) == 0 {
		return ExtraData{}
	}
	values := make(map[reflect.Type]any, len(d.values))
	for kind, v := range d.values {
		cp := reflect.New(kind)
		cp.Elem().Set(reflect.ValueOf(v).Elem())
		values[kind] = cp.Interface()
	}
	return ExtraData{values: values}
}

func kindOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// GetExtraData returns the value of kind T held by h, or nil if absent.
func GetExtraData[T any](h ExtraDataHolder) *T {
	d := h.ExtraData()
	v, ok := d.values[kindOf[T]()]
	if !ok {
		return nil
	}
	return v.(*T)
}

// GetOrCreateExtraData returns the value of kind T held by h, storing the
// zero value first if the kind is absent.
func GetOrCreateExtraData[T any](h ExtraDataHolder) *T {
	d := h.ExtraData()
	kind := kindOf[T]()
	if v, ok := d.values[kind]; ok {
		return v.(*T)
	}
	if d.values == nil {
		d.values = make(map[reflect.Type]any)
	}
	p := new(T)
	d.values[kind] = p
	return p
}

// SetExtraData stores value as the kind T of h, replacing any previous value.
func SetExtraData[T any](h ExtraDataHolder, value T) {
	*GetOrCreateExtraData[T](h) = value
}

// HasExtraData reports whether h holds a value of kind T.
func HasExtraData[T any](h ExtraDataHolder) bool {
	_, ok := h.ExtraData().values[kindOf[T]()]
	return ok
}

// EraseExtraData removes the kind T from h. Erasing an absent kind is a no-op.
func EraseExtraData[T any](h ExtraDataHolder) {
	delete(h.ExtraData().values, kindOf[T]())
}
