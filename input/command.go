package input

// Command is a discrete player action delivered once per tick
type Command uint8

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandSoftDrop
	CommandRotate
	CommandQuit
)

var commandNames = [...]string{
	CommandNone:     "None",
	CommandLeft:     "Left",
	CommandRight:    "Right",
	CommandSoftDrop: "SoftDrop",
	CommandRotate:   "Rotate",
	CommandQuit:     "Quit",
}

// String returns the command name
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "Unknown"
}

// Source delivers at most one command per tick without blocking the loop
type Source interface {
	Poll() Command
}
