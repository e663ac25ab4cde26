// Package keymap translates host keyboard scancodes into the guest key
// code space (Linux input-event codes). The scancode values follow the
// USB HID usage table that SDL reports; they are declared locally so
// that the table can be used and tested without linking any windowing
// library.
package keymap

// Scancode is a host-reported raw key identifier.
type Scancode uint32

// KeyCode is a guest key code (Linux input-event code). A zero value
// (KeyReserved) means "no code".
type KeyCode uint16

// NRKeys bounds the scancode table and the pressed-state tracking of
// the input translator. Guest codes >= NRKeys exist (e.g. KeySelect)
// and are forwarded, but not tracked.
const NRKeys = 256

// Host scancodes (USB HID usage IDs, as reported by SDL).
const (
	ScanUnknown Scancode = 0

	ScanA Scancode = iota + 3 // 4; HID usage IDs are contiguous from here
	ScanB
	ScanC
	ScanD
	ScanE
	ScanF
	ScanG
	ScanH
	ScanI
	ScanJ
	ScanK
	ScanL
	ScanM
	ScanN
	ScanO
	ScanP
	ScanQ
	ScanR
	ScanS
	ScanT
	ScanU
	ScanV
	ScanW
	ScanX
	ScanY
	ScanZ
	Scan1
	Scan2
	Scan3
	Scan4
	Scan5
	Scan6
	Scan7
	Scan8
	Scan9
	Scan0
	ScanReturn
	ScanEscape
	ScanBackspace
	ScanTab
	ScanSpace
	ScanMinus
	ScanEquals
	ScanLeftBracket
	ScanRightBracket
	ScanBackslash
	ScanNonUSHash
	ScanSemicolon
	ScanApostrophe
	ScanGrave
	ScanComma
	ScanPeriod
	ScanSlash
	ScanCapsLock
	ScanF1
	ScanF2
	ScanF3
	ScanF4
	ScanF5
	ScanF6
	ScanF7
	ScanF8
	ScanF9
	ScanF10
	ScanF11
	ScanF12
	ScanPrintScreen
	ScanScrollLock
	ScanPause
	ScanInsert
	ScanHome
	ScanPageUp
	ScanDelete
	ScanEnd
	ScanPageDown
	ScanRight
	ScanLeft
	ScanDown
	ScanUp
	ScanNumLockClear
	ScanKPDivide
	ScanKPMultiply
	ScanKPMinus
	ScanKPPlus
	ScanKPEnter
	ScanKP1
	ScanKP2
	ScanKP3
	ScanKP4
	ScanKP5
	ScanKP6
	ScanKP7
	ScanKP8
	ScanKP9
	ScanKP0
	ScanKPPeriod
	ScanNonUSBackslash
	ScanApplication
	ScanPower
	ScanKPEquals
	ScanF13
	ScanF14
	ScanF15
	ScanF16
	ScanF17
	ScanF18
	ScanF19
	ScanF20
	ScanF21
	ScanF22
	ScanF23
	ScanF24
	ScanExecute
	ScanHelp
	ScanMenu
	ScanSelect
	ScanStop
	ScanAgain
	ScanUndo
	ScanCut
	ScanCopy
	ScanPaste
	ScanFind
	ScanMute
	ScanVolumeUp
	ScanVolumeDown
)

const (
	ScanKPComma       Scancode = 133
	ScanKPEqualsAS400 Scancode = 134
	ScanAltErase      Scancode = 153
	ScanSysReq        Scancode = 154
	ScanCancel        Scancode = 155
	ScanClear         Scancode = 156
	ScanReturn2       Scancode = 158
	ScanLCtrl         Scancode = 224
	ScanLShift        Scancode = 225
	ScanLAlt          Scancode = 226
	ScanLGUI          Scancode = 227
	ScanRCtrl         Scancode = 228
	ScanRShift        Scancode = 229
	ScanRAlt          Scancode = 230
)

// Guest key codes (Linux input-event codes).
const (
	KeyReserved   KeyCode = 0
	KeyEsc        KeyCode = 1
	Key1          KeyCode = 2
	Key2          KeyCode = 3
	Key3          KeyCode = 4
	Key4          KeyCode = 5
	Key5          KeyCode = 6
	Key6          KeyCode = 7
	Key7          KeyCode = 8
	Key8          KeyCode = 9
	Key9          KeyCode = 10
	Key0          KeyCode = 11
	KeyMinus      KeyCode = 12
	KeyEqual      KeyCode = 13
	KeyBackspace  KeyCode = 14
	KeyTab        KeyCode = 15
	KeyQ          KeyCode = 16
	KeyW          KeyCode = 17
	KeyE          KeyCode = 18
	KeyR          KeyCode = 19
	KeyT          KeyCode = 20
	KeyY          KeyCode = 21
	KeyU          KeyCode = 22
	KeyI          KeyCode = 23
	KeyO          KeyCode = 24
	KeyP          KeyCode = 25
	KeyLeftBrace  KeyCode = 26
	KeyRightBrace KeyCode = 27
	KeyEnter      KeyCode = 28
	KeyLeftCtrl   KeyCode = 29
	KeyA          KeyCode = 30
	KeyS          KeyCode = 31
	KeyD          KeyCode = 32
	KeyF          KeyCode = 33
	KeyG          KeyCode = 34
	KeyH          KeyCode = 35
	KeyJ          KeyCode = 36
	KeyK          KeyCode = 37
	KeyL          KeyCode = 38
	KeySemicolon  KeyCode = 39
	KeyApostrophe KeyCode = 40
	KeyGrave      KeyCode = 41
	KeyLeftShift  KeyCode = 42
	KeyBackslash  KeyCode = 43
	KeyZ          KeyCode = 44
	KeyX          KeyCode = 45
	KeyC          KeyCode = 46
	KeyV          KeyCode = 47
	KeyB          KeyCode = 48
	KeyN          KeyCode = 49
	KeyM          KeyCode = 50
	KeyComma      KeyCode = 51
	KeyDot        KeyCode = 52
	KeySlash      KeyCode = 53
	KeyRightShift KeyCode = 54
	KeyKPAsterisk KeyCode = 55
	KeyLeftAlt    KeyCode = 56
	KeySpace      KeyCode = 57
	KeyCapsLock   KeyCode = 58
	KeyF1         KeyCode = 59
	KeyF2         KeyCode = 60
	KeyF3         KeyCode = 61
	KeyF4         KeyCode = 62
	KeyF5         KeyCode = 63
	KeyF6         KeyCode = 64
	KeyF7         KeyCode = 65
	KeyF8         KeyCode = 66
	KeyF9         KeyCode = 67
	KeyF10        KeyCode = 68
	KeyNumLock    KeyCode = 69
	KeyScrollLock KeyCode = 70
	KeyKP7        KeyCode = 71
	KeyKP8        KeyCode = 72
	KeyKP9        KeyCode = 73
	KeyKPMinus    KeyCode = 74
	KeyKP4        KeyCode = 75
	KeyKP5        KeyCode = 76
	KeyKP6        KeyCode = 77
	KeyKPPlus     KeyCode = 78
	KeyKP1        KeyCode = 79
	KeyKP2        KeyCode = 80
	KeyKP3        KeyCode = 81
	KeyKP0        KeyCode = 82
	KeyKPDot      KeyCode = 83
	KeyF11        KeyCode = 87
	KeyF12        KeyCode = 88
	KeyKPEnter    KeyCode = 96
	KeyRightCtrl  KeyCode = 97
	KeyKPSlash    KeyCode = 98
	KeySysRq      KeyCode = 99
	KeyRightAlt   KeyCode = 100
	KeyHome       KeyCode = 102
	KeyUp         KeyCode = 103
	KeyPageUp     KeyCode = 104
	KeyLeft       KeyCode = 105
	KeyRight      KeyCode = 106
	KeyEnd        KeyCode = 107
	KeyDown       KeyCode = 108
	KeyPageDown   KeyCode = 109
	KeyInsert     KeyCode = 110
	KeyDelete     KeyCode = 111
	KeyMute       KeyCode = 113
	KeyVolumeDown KeyCode = 114
	KeyVolumeUp   KeyCode = 115
	KeyPower      KeyCode = 116
	KeyKPEqual    KeyCode = 117
	KeyPause      KeyCode = 119
	KeyKPComma    KeyCode = 121
	KeyLeftMeta   KeyCode = 125
	KeyStop       KeyCode = 128
	KeyAgain      KeyCode = 129
	KeyUndo       KeyCode = 131
	KeyCopy       KeyCode = 133
	KeyPaste      KeyCode = 135
	KeyFind       KeyCode = 136
	KeyCut        KeyCode = 137
	KeyHelp       KeyCode = 138
	KeyMenu       KeyCode = 139
	KeyF13        KeyCode = 183
	KeyF14        KeyCode = 184
	KeyF15        KeyCode = 185
	KeyF16        KeyCode = 186
	KeyF17        KeyCode = 187
	KeyF18        KeyCode = 188
	KeyF19        KeyCode = 189
	KeyF20        KeyCode = 190
	KeyF21        KeyCode = 191
	KeyF22        KeyCode = 192
	KeyF23        KeyCode = 193
	KeyF24        KeyCode = 194
	KeyPrint      KeyCode = 210
	KeyAltErase   KeyCode = 222
	KeyCancel     KeyCode = 223
	KeySelect     KeyCode = 0x161
	KeyClear      KeyCode = 0x163
)

// keycodes assumes Xorg with a PC keyboard; unlisted scancodes stay at
// KeyReserved.
var keycodes = [NRKeys]KeyCode{
	ScanUnknown:        KeyReserved,
	ScanA:              KeyA,
	ScanB:              KeyB,
	ScanC:              KeyC,
	ScanD:              KeyD,
	ScanE:              KeyE,
	ScanF:              KeyF,
	ScanG:              KeyG,
	ScanH:              KeyH,
	ScanI:              KeyI,
	ScanJ:              KeyJ,
	ScanK:              KeyK,
	ScanL:              KeyL,
	ScanM:              KeyM,
	ScanN:              KeyN,
	ScanO:              KeyO,
	ScanP:              KeyP,
	ScanQ:              KeyQ,
	ScanR:              KeyR,
	ScanS:              KeyS,
	ScanT:              KeyT,
	ScanU:              KeyU,
	ScanV:              KeyV,
	ScanW:              KeyW,
	ScanX:              KeyX,
	ScanY:              KeyY,
	ScanZ:              KeyZ,
	Scan1:              Key1,
	Scan2:              Key2,
	Scan3:              Key3,
	Scan4:              Key4,
	Scan5:              Key5,
	Scan6:              Key6,
	Scan7:              Key7,
	Scan8:              Key8,
	Scan9:              Key9,
	Scan0:              Key0,
	ScanReturn:         KeyEnter,
	ScanEscape:         KeyEsc,
	ScanBackspace:      KeyBackspace,
	ScanTab:            KeyTab,
	ScanSpace:          KeySpace,
	ScanMinus:          KeyMinus,
	ScanEquals:         KeyEqual,
	ScanLeftBracket:    KeyLeftBrace,
	ScanRightBracket:   KeyRightBrace,
	ScanBackslash:      KeyBackslash,
	ScanNonUSHash:      KeyBackslash,
	ScanSemicolon:      KeySemicolon,
	ScanApostrophe:     KeyApostrophe,
	ScanGrave:          KeyGrave,
	ScanComma:          KeyComma,
	ScanPeriod:         KeyDot,
	ScanSlash:          KeySlash,
	ScanCapsLock:       KeyCapsLock,
	ScanF1:             KeyF1,
	ScanF2:             KeyF2,
	ScanF3:             KeyF3,
	ScanF4:             KeyF4,
	ScanF5:             KeyF5,
	ScanF6:             KeyF6,
	ScanF7:             KeyF7,
	ScanF8:             KeyF8,
	ScanF9:             KeyF9,
	ScanF10:            KeyF10,
	ScanF11:            KeyF11,
	ScanF12:            KeyF12,
	ScanPrintScreen:    KeyPrint,
	ScanScrollLock:     KeyScrollLock,
	ScanPause:          KeyPause,
	ScanInsert:         KeyInsert,
	ScanHome:           KeyHome,
	ScanPageUp:         KeyPageUp,
	ScanDelete:         KeyDelete,
	ScanEnd:            KeyEnd,
	ScanPageDown:       KeyPageDown,
	ScanRight:          KeyRight,
	ScanLeft:           KeyLeft,
	ScanDown:           KeyDown,
	ScanUp:             KeyUp,
	ScanNumLockClear:   KeyNumLock,
	ScanKPDivide:       KeyKPSlash,
	ScanKPMultiply:     KeyKPAsterisk,
	ScanKPMinus:        KeyKPMinus,
	ScanKPPlus:         KeyKPPlus,
	ScanKPEnter:        KeyKPEnter,
	ScanKP1:            KeyKP1,
	ScanKP2:            KeyKP2,
	ScanKP3:            KeyKP3,
	ScanKP4:            KeyKP4,
	ScanKP5:            KeyKP5,
	ScanKP6:            KeyKP6,
	ScanKP7:            KeyKP7,
	ScanKP8:            KeyKP8,
	ScanKP9:            KeyKP9,
	ScanKP0:            KeyKP0,
	ScanKPPeriod:       KeyKPDot,
	ScanNonUSBackslash: KeyBackslash,
	ScanPower:          KeyPower,
	ScanKPEquals:       KeyKPEqual,
	ScanF13:            KeyF13,
	ScanF14:            KeyF14,
	ScanF15:            KeyF15,
	ScanF16:            KeyF16,
	ScanF17:            KeyF17,
	ScanF18:            KeyF18,
	ScanF19:            KeyF19,
	ScanF20:            KeyF20,
	ScanF21:            KeyF21,
	ScanF22:            KeyF22,
	ScanF23:            KeyF23,
	ScanF24:            KeyF24,
	ScanHelp:           KeyHelp,
	ScanMenu:           KeyMenu,
	ScanSelect:         KeySelect,
	ScanStop:           KeyStop,
	ScanAgain:          KeyAgain,
	ScanUndo:           KeyUndo,
	ScanCut:            KeyCut,
	ScanCopy:           KeyCopy,
	ScanPaste:          KeyPaste,
	ScanFind:           KeyFind,
	ScanMute:           KeyMute,
	ScanVolumeUp:       KeyVolumeUp,
	ScanVolumeDown:     KeyVolumeDown,
	ScanKPComma:        KeyKPComma,
	ScanKPEqualsAS400:  KeyKPEqual,
	ScanAltErase:       KeyAltErase,
	ScanSysReq:         KeySysRq,
	ScanCancel:         KeyCancel,
	ScanClear:          KeyClear,
	ScanReturn2:        KeyEnter,
	ScanLCtrl:          KeyLeftCtrl,
	ScanLShift:         KeyLeftShift,
	ScanLAlt:           KeyLeftAlt,
	ScanLGUI:           KeyLeftMeta,
	ScanRCtrl:          KeyRightCtrl,
	ScanRShift:         KeyRightShift,
	ScanRAlt:           KeyRightAlt,
}

// Lookup returns the guest key code for a host scancode, or KeyReserved
// if the scancode is out of range or unmapped.
func Lookup(sc Scancode) KeyCode {
	if sc < NRKeys {
		return keycodes[sc]
	}
	return KeyReserved
}
