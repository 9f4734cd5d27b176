package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reusee/intcode/vars"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage(os.Stdout)
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help")
	ret.Define("-h", usage)

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, name := range command.Aliases {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

var errorType = reflect.TypeFor[error]()

func (p *Executor) Execute(args []string) error {
	commands := p.commands
	for {
		if len(args) == 0 {
			return nil
		}

		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			var callArgs []reflect.Value
			for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
				value, err := getArg(command.Func.Type().In(i), args)
				if err != nil {
					return err
				}
				if len(args) > 0 {
					args = args[1:]
				}
				callArgs = append(callArgs, value)
			}
			rets := command.Func.Call(callArgs)
			if len(rets) > 0 {
				err := rets[0].Interface().(error)
				if err != nil {
					return err
				}
			}
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, cmd := range command.Subs {
				names := []string{subname}
				if cmd != nil {
					names = append(names, cmd.Aliases...)
				}
				for _, subname := range names {
					if _, ok := commands[subname]; ok {
						return fmt.Errorf("duplicated sub command: %s %s", name, subname)
					}
					commands[subname] = cmd
				}
			}
		}

	}
}

func getArg(t reflect.Type, args []string) (ret reflect.Value, err error) {
	if len(args) == 0 {

		if t.Kind() == reflect.Pointer {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}

		return ret, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elemValue, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, err
		}
		ret = elemValue.Addr()
		return ret, nil
	}

	str := args[0]

	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		v := vars.StrToBool(str)
		ret.SetBool(v)
		return

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return ret, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return

	case reflect.Slice:
		// comma separated elements
		fields := strings.Split(str, ",")
		ret = reflect.MakeSlice(t, 0, len(fields))
		for _, field := range fields {
			elem, err := getArg(t.Elem(), []string{strings.TrimSpace(field)})
			if err != nil {
				return ret, err
			}
			ret = reflect.Append(ret, elem)
		}
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}

func (p *Executor) PrintUsage(w io.Writer) {
	printUsage(w, p.commands, "")
}

func printUsage(w io.Writer, commands map[string]*Command, indent string) {
	names := make(map[*Command][]string)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		if command := commands[name]; command != nil {
			names[command] = append(names[command], name)
		}
	}
	// sub commands carry aliases that are not keys of the map
	for command, list := range names {
		for _, alias := range command.Aliases {
			if !slices.Contains(list, alias) {
				list = append(list, alias)
			}
		}
		slices.Sort(list)
		names[command] = list
	}
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		seen[command] = true
		line := indent + strings.Join(names[command], ", ")
		if command.Func.IsValid() {
			for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
				line += " <" + command.Func.Type().In(i).String() + ">"
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			printUsage(w, command.Subs, indent+"  ")
		}
	}
}
