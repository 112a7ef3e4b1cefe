package termline

// KeyKind classifies one decoded key press.
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyUndefined
)

var keyKindNames = [...]string{
	"char",
	"enter",
	"backspace",
	"delete",
	"tab",
	"left",
	"right",
	"up",
	"down",
	"home",
	"end",
	"undefined",
}

func (k KeyKind) String() string {
	if int(k) < len(keyKindNames) {
		return keyKindNames[k]
	}
	return "unknown"
}

// Key is one classified key press. Ch is set only for KeyChar.
type Key struct {
	Kind KeyKind
	Ch   byte
}

// KeySource delivers classified key presses. ReadKeys blocks until at
// least one key is available and returns the batch in press order. An
// error from ReadKeys is fatal to the input line being read.
type KeySource interface {
	ReadKeys() ([]Key, error)
}
