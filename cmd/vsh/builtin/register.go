package builtin

import (
	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

// Register wires every sh.builtin.* method into reg: the ~20 spec'd
// object-algebra builtins plus the supplemental Ps source builtin. runLine
// is foreach's recursive-executor callback; printSink, if non-nil, is
// print's presentation side channel.
func Register(reg *wire.Registry, runLine RunLine, printSink func([]value.Object)) error {
	plain := []struct {
		desc wire.Descriptor
		h    wire.Handler
	}{
		{echoDescriptor(), echoHandler},
		{lsDescriptor(), lsHandler},
		{grepDescriptor(), grepHandler},
		{countDescriptor(), countHandler},
		{jsexecDescriptor(), jsexecHandler},
		{mapDescriptor(), mapHandler},
		{filterMapDescriptor(), filterMapHandler},
		{sortDescriptor(), sortHandler},
		{headDescriptor(), headHandler},
		{tailDescriptor(), tailHandler},
		{uniqDescriptor(), uniqHandler},
		{reverseDescriptor(), reverseHandler},
		{sumDescriptor(), sumHandler},
		{minDescriptor(), minHandler},
		{maxDescriptor(), maxHandler},
		{whereDescriptor(), whereHandler},
		{groupDescriptor(), groupHandler},
		{enumerateDescriptor(), enumerateHandler},
		{varlinkDescriptor(), varlinkHandler},
		{psDescriptor(), psHandler},
	}
	for _, m := range plain {
		if err := reg.Register(m.desc, m.h); err != nil {
			return err
		}
	}

	if err := reg.Register(foreachDescriptor(), newForeachHandler(runLine)); err != nil {
		return err
	}
	if err := reg.Register(printDescriptor(), newPrintHandler(printSink)); err != nil {
		return err
	}
	// help closes over the registry itself to enumerate every registered
	// command, so it is registered last.
	if err := reg.Register(helpDescriptor(), newHelpHandler(reg)); err != nil {
		return err
	}

	return wire.RegisterIntrospection(reg)
}
