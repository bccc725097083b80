package parser

// Group is the functional category a command is routed by.
type Group int

const (
	GroupUnknown Group = iota
	GroupFileIO
	GroupProcess
	GroupEnvironment
	GroupShell
	GroupSystem
)

var groupTable = map[CommandID]Group{
	CmdLs:          GroupFileIO,
	CmdDir:         GroupFileIO,
	CmdRew:         GroupFileIO,
	CmdStats:       GroupFileIO,
	CmdHead:        GroupFileIO,
	CmdTail:        GroupFileIO,
	CmdMv:          GroupFileIO,
	CmdCp:          GroupFileIO,
	CmdMkdir:       GroupFileIO,
	CmdRmdir:       GroupFileIO,
	CmdTouch:       GroupFileIO,
	CmdRm:          GroupFileIO,
	CmdPs:          GroupProcess,
	CmdKill:        GroupProcess,
	CmdPwd:         GroupEnvironment,
	CmdWhoami:      GroupEnvironment,
	CmdHostname:    GroupEnvironment,
	CmdDatetime:    GroupEnvironment,
	CmdCd:          GroupEnvironment,
	CmdExit:        GroupShell,
	CmdClear:       GroupShell,
	CmdEcho:        GroupShell,
	CmdHistory:     GroupShell,
	CmdHelp:        GroupShell,
	CmdSysteminfo:  GroupSystem,
	CmdSystemstats: GroupSystem,
}

// GroupOf returns the group of a command, Unresolved maps to GroupUnknown.
func GroupOf(id CommandID) Group {
	return groupTable[id]
}

var groupNames = map[Group]string{
	GroupUnknown:     "unknown",
	GroupFileIO:      "file",
	GroupProcess:     "process",
	GroupEnvironment: "env",
	GroupShell:       "shell",
	GroupSystem:      "system",
}

// String returns the group name used in the builtin table.
func (g Group) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "unknown"
}
