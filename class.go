package cannolib

// ClassObject holds a class definition: a name-keyed member table built
// once by class-definition code. The table is immutable for the lifetime of
// the class.
type ClassObject struct {
	Members map[string]Value
}

func NewClassObject(members map[string]Value) *ClassObject {
	return &ClassObject{Members: members}
}

func (c *ClassObject) Get(name string) (Value, bool) {
	value, ok := c.Members[name]
	return value, ok
}
