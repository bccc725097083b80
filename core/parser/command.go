// Package parser resolves command and flag lexemes against the builtin
// tables.
package parser

// CommandID identifies a builtin command. The zero value is Unresolved.
type CommandID uint8

const (
	Unresolved CommandID = iota
	CmdLs
	CmdPwd
	CmdExit
	CmdCd
	CmdWhoami
	CmdDatetime
	CmdHostname
	CmdDir
	CmdTouch
	CmdRm
	CmdMkdir
	CmdRmdir
	CmdClear
	CmdMv
	CmdCp
	CmdSysteminfo
	CmdSystemstats
	CmdRew
	CmdEcho
	CmdStats
	CmdHead
	CmdTail
	CmdPs
	CmdKill
	CmdHistory
	CmdHelp
)

var commandTable = map[string]CommandID{
	"ls":          CmdLs,
	"pwd":         CmdPwd,
	"exit":        CmdExit,
	"cd":          CmdCd,
	"whoami":      CmdWhoami,
	"datetime":    CmdDatetime,
	"hostname":    CmdHostname,
	"dir":         CmdDir,
	"touch":       CmdTouch,
	"rm":          CmdRm,
	"mkdir":       CmdMkdir,
	"rmdir":       CmdRmdir,
	"clear":       CmdClear,
	"cls":         CmdClear,
	"mv":          CmdMv,
	"cp":          CmdCp,
	"systeminfo":  CmdSysteminfo,
	"systemstats": CmdSystemstats,
	"rew":         CmdRew,
	"echo":        CmdEcho,
	"stats":       CmdStats,
	"head":        CmdHead,
	"tail":        CmdTail,
	"ps":          CmdPs,
	"kill":        CmdKill,
	"history":     CmdHistory,
	"help":        CmdHelp,
}

var commandNames = func() map[CommandID]string {
	out := make(map[CommandID]string)
	for name, id := range commandTable {
		// cls is an alias, prefer clear as the display name.
		if name == "cls" {
			continue
		}
		out[id] = name
	}
	return out
}()

// ResolveCommand maps a command lexeme to its id, unknown lexemes resolve to
// Unresolved.
func ResolveCommand(lexeme string) CommandID {
	return commandTable[lexeme]
}

func (id CommandID) String() string {
	if name, ok := commandNames[id]; ok {
		return name
	}
	return "unresolved"
}
