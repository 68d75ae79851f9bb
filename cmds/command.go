package cmds

import (
	"fmt"
	"maps"
	"reflect"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	Hidden      bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

// Hide omits the command from usage.
func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	command := &Command{
		Func: fnValue,
	}

	return command
}

// With adds commands that are accepted after this one.
// A command without Func only groups its subs.
func (c *Command) With(subs map[string]*Command) *Command {
	if c == nil {
		c = new(Command)
	}
	if c.Subs == nil {
		c.Subs = make(map[string]*Command, len(subs))
	}
	maps.Copy(c.Subs, subs)
	return c
}
