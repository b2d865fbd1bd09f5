package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		// aliases are listed with the defined name
		if command == nil || slices.Contains(command.Aliases, name) {
			continue
		}

		names := append([]string{name}, command.Aliases...)
		spelling := strings.Join(names, ", ")
		if params := command.Params(); len(params) > 0 {
			spelling += " " + strings.Join(params, " ")
		}
		indent := strings.Repeat("  ", depth)
		if command.Description != "" {
			fmt.Fprintf(w, "%s%s\t%s\n", indent, spelling, command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, spelling)
		}
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
