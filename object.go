package cannolib

// InstanceObject holds an instance's attribute table. Values hold it by
// pointer: every binding of the same object observes attribute mutation
// through any of them. The table starts as a copy of the class's member
// table and diverges independently per instance.
type InstanceObject struct {
	Attributes map[string]Value
}

func NewInstanceObject(attributes map[string]Value) *InstanceObject {
	return &InstanceObject{Attributes: attributes}
}

func (o *InstanceObject) Get(name string) (Value, bool) {
	value, ok := o.Attributes[name]
	return value, ok
}

func (o *InstanceObject) Set(name string, value Value) {
	o.Attributes[name] = value
}

func (o *InstanceObject) Len() int {
	return len(o.Attributes)
}
