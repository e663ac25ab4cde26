//go:build ebiten

package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/a3f/TinyEMU/keymap"
)

// ebitenScancodes routes ebiten keys through the same scancode space
// as the SDL backend so both share one keymap. Keys ebiten does not
// expose (F13+, media keys) are simply absent.
var ebitenScancodes = map[ebiten.Key]keymap.Scancode{
	ebiten.KeyA:              keymap.ScanA,
	ebiten.KeyB:              keymap.ScanB,
	ebiten.KeyC:              keymap.ScanC,
	ebiten.KeyD:              keymap.ScanD,
	ebiten.KeyE:              keymap.ScanE,
	ebiten.KeyF:              keymap.ScanF,
	ebiten.KeyG:              keymap.ScanG,
	ebiten.KeyH:              keymap.ScanH,
	ebiten.KeyI:              keymap.ScanI,
	ebiten.KeyJ:              keymap.ScanJ,
	ebiten.KeyK:              keymap.ScanK,
	ebiten.KeyL:              keymap.ScanL,
	ebiten.KeyM:              keymap.ScanM,
	ebiten.KeyN:              keymap.ScanN,
	ebiten.KeyO:              keymap.ScanO,
	ebiten.KeyP:              keymap.ScanP,
	ebiten.KeyQ:              keymap.ScanQ,
	ebiten.KeyR:              keymap.ScanR,
	ebiten.KeyS:              keymap.ScanS,
	ebiten.KeyT:              keymap.ScanT,
	ebiten.KeyU:              keymap.ScanU,
	ebiten.KeyV:              keymap.ScanV,
	ebiten.KeyW:              keymap.ScanW,
	ebiten.KeyX:              keymap.ScanX,
	ebiten.KeyY:              keymap.ScanY,
	ebiten.KeyZ:              keymap.ScanZ,
	ebiten.KeyDigit1:         keymap.Scan1,
	ebiten.KeyDigit2:         keymap.Scan2,
	ebiten.KeyDigit3:         keymap.Scan3,
	ebiten.KeyDigit4:         keymap.Scan4,
	ebiten.KeyDigit5:         keymap.Scan5,
	ebiten.KeyDigit6:         keymap.Scan6,
	ebiten.KeyDigit7:         keymap.Scan7,
	ebiten.KeyDigit8:         keymap.Scan8,
	ebiten.KeyDigit9:         keymap.Scan9,
	ebiten.KeyDigit0:         keymap.Scan0,
	ebiten.KeyEnter:          keymap.ScanReturn,
	ebiten.KeyEscape:         keymap.ScanEscape,
	ebiten.KeyBackspace:      keymap.ScanBackspace,
	ebiten.KeyTab:            keymap.ScanTab,
	ebiten.KeySpace:          keymap.ScanSpace,
	ebiten.KeyMinus:          keymap.ScanMinus,
	ebiten.KeyEqual:          keymap.ScanEquals,
	ebiten.KeyBracketLeft:    keymap.ScanLeftBracket,
	ebiten.KeyBracketRight:   keymap.ScanRightBracket,
	ebiten.KeyBackslash:      keymap.ScanBackslash,
	ebiten.KeySemicolon:      keymap.ScanSemicolon,
	ebiten.KeyQuote:          keymap.ScanApostrophe,
	ebiten.KeyBackquote:      keymap.ScanGrave,
	ebiten.KeyComma:          keymap.ScanComma,
	ebiten.KeyPeriod:         keymap.ScanPeriod,
	ebiten.KeySlash:          keymap.ScanSlash,
	ebiten.KeyCapsLock:       keymap.ScanCapsLock,
	ebiten.KeyF1:             keymap.ScanF1,
	ebiten.KeyF2:             keymap.ScanF2,
	ebiten.KeyF3:             keymap.ScanF3,
	ebiten.KeyF4:             keymap.ScanF4,
	ebiten.KeyF5:             keymap.ScanF5,
	ebiten.KeyF6:             keymap.ScanF6,
	ebiten.KeyF7:             keymap.ScanF7,
	ebiten.KeyF8:             keymap.ScanF8,
	ebiten.KeyF9:             keymap.ScanF9,
	ebiten.KeyF10:            keymap.ScanF10,
	ebiten.KeyF11:            keymap.ScanF11,
	ebiten.KeyF12:            keymap.ScanF12,
	ebiten.KeyPrintScreen:    keymap.ScanPrintScreen,
	ebiten.KeyScrollLock:     keymap.ScanScrollLock,
	ebiten.KeyPause:          keymap.ScanPause,
	ebiten.KeyInsert:         keymap.ScanInsert,
	ebiten.KeyHome:           keymap.ScanHome,
	ebiten.KeyPageUp:         keymap.ScanPageUp,
	ebiten.KeyDelete:         keymap.ScanDelete,
	ebiten.KeyEnd:            keymap.ScanEnd,
	ebiten.KeyPageDown:       keymap.ScanPageDown,
	ebiten.KeyArrowRight:     keymap.ScanRight,
	ebiten.KeyArrowLeft:      keymap.ScanLeft,
	ebiten.KeyArrowDown:      keymap.ScanDown,
	ebiten.KeyArrowUp:        keymap.ScanUp,
	ebiten.KeyNumLock:        keymap.ScanNumLockClear,
	ebiten.KeyNumpadDivide:   keymap.ScanKPDivide,
	ebiten.KeyNumpadMultiply: keymap.ScanKPMultiply,
	ebiten.KeyNumpadSubtract: keymap.ScanKPMinus,
	ebiten.KeyNumpadAdd:      keymap.ScanKPPlus,
	ebiten.KeyNumpadEnter:    keymap.ScanKPEnter,
	ebiten.KeyNumpad1:        keymap.ScanKP1,
	ebiten.KeyNumpad2:        keymap.ScanKP2,
	ebiten.KeyNumpad3:        keymap.ScanKP3,
	ebiten.KeyNumpad4:        keymap.ScanKP4,
	ebiten.KeyNumpad5:        keymap.ScanKP5,
	ebiten.KeyNumpad6:        keymap.ScanKP6,
	ebiten.KeyNumpad7:        keymap.ScanKP7,
	ebiten.KeyNumpad8:        keymap.ScanKP8,
	ebiten.KeyNumpad9:        keymap.ScanKP9,
	ebiten.KeyNumpad0:        keymap.ScanKP0,
	ebiten.KeyNumpadDecimal:  keymap.ScanKPPeriod,
	ebiten.KeyContextMenu:    keymap.ScanMenu,
	ebiten.KeyControlLeft:    keymap.ScanLCtrl,
	ebiten.KeyShiftLeft:      keymap.ScanLShift,
	ebiten.KeyAltLeft:        keymap.ScanLAlt,
	ebiten.KeyMetaLeft:       keymap.ScanLGUI,
	ebiten.KeyControlRight:   keymap.ScanRCtrl,
	ebiten.KeyShiftRight:     keymap.ScanRShift,
	ebiten.KeyAltRight:       keymap.ScanRAlt,
}
