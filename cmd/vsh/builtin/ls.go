package builtin

import (
	"iter"
	"os"
	"path/filepath"
	"sort"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const lsDoc = `List a directory.

args[0] is the path, defaulting to ".". Entries are sorted by name
ascending. Each emitted Object is {name, type, size}, where type is
one of "dir", "link", "file" (lstat semantics: a symlink is reported
as "link", never as its target's type). Entries that fail to stat are
silently skipped.`

func lsDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:        "sh.builtin.Ls",
		AcceptsArgs: true,
		Doc:         lsDoc,
	}
}

func lsHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	path := "."
	if len(p.Args) > 0 {
		path = p.Args[0]
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return emptySeq(), nil
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)

	var out []value.Object
	for _, name := range names {
		info, err := os.Lstat(filepath.Join(path, name))
		if err != nil {
			continue
		}
		kind := "file"
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			kind = "link"
		case info.IsDir():
			kind = "dir"
		}
		entry := value.NewObjectCap(3)
		entry.Set("name", name)
		entry.Set("type", kind)
		entry.Set("size", info.Size())
		out = append(out, wrapObject(entry))
	}
	return seqOf(out), nil
}
