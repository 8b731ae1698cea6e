package builtin

import (
	"iter"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"vsh/cmd/vsh/value"
	"vsh/cmd/vsh/wire"
)

const psDoc = `List running processes (supplemental source builtin).

args[0], if present, is a case-insensitive substring filter on process
name. For each process, emit {pid, name, status, cpu_percent,
mem_percent}; a process that can't be inspected (exited mid-scan,
permission denied) is silently skipped, the same way ls skips entries
that fail to stat.`

func psDescriptor() wire.Descriptor {
	return wire.Descriptor{
		Name:        "sh.builtin.Ps",
		AcceptsArgs: true,
		Doc:         psDoc,
	}
}

func psHandler(p wire.Params) (iter.Seq[value.Object], *wire.HandlerError) {
	var filter string
	if len(p.Args) > 0 {
		filter = strings.ToLower(p.Args[0])
	}

	procs, err := process.Processes()
	if err != nil {
		return emptySeq(), nil
	}

	var out []value.Object
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		statuses, err := proc.Status()
		if err != nil {
			continue
		}
		cpuPct, err := proc.CPUPercent()
		if err != nil {
			continue
		}
		memPct, err := proc.MemoryPercent()
		if err != nil {
			continue
		}

		rec := value.NewObjectCap(5)
		rec.Set("pid", int64(proc.Pid))
		rec.Set("name", name)
		rec.Set("status", strings.Join(statuses, ","))
		rec.Set("cpu_percent", cpuPct)
		rec.Set("mem_percent", float64(memPct))
		out = append(out, wrapObject(rec))
	}
	return seqOf(out), nil
}
