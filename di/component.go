package di

import "reflect"

// Component describes something the Driver can construct.
//
// New receives the resolved arguments in declared parameter order. A
// *Component is also a Token, so a component's instance can be bound under
// the component itself.
type Component struct {
	Name string
	New  func(args []any) (any, error)
}

var _ Token = (*Component)(nil)

// TokenName implements Token.
func (c *Component) TokenName() string {
	if c == nil {
		return "<nil>"
	}
	return c.Name
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
