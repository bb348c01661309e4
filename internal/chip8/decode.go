package chip8

// Op identifies a decoded CHIP-8 operation.
type Op uint8

// CHIP-8 operations, named after their common assembler mnemonics.
const (
	OpUnknown  Op = iota
	OpCls         // 00E0
	OpRet         // 00EE
	OpJp          // 1nnn
	OpCall        // 2nnn
	OpSeByte      // 3xkk
	OpSneByte     // 4xkk
	OpSeReg       // 5xy0
	OpLdByte      // 6xkk
	OpAddByte     // 7xkk
	OpLdReg       // 8xy0
	OpOr          // 8xy1
	OpAnd         // 8xy2
	OpXor         // 8xy3
	OpAddReg      // 8xy4
	OpSub         // 8xy5
	OpShr         // 8xy6
	OpSubn        // 8xy7
	OpShl         // 8xyE
	OpSneReg      // 9xy0
	OpLdI         // Annn
	OpJpV0        // Bnnn
	OpRnd         // Cxkk
	OpDrw         // Dxyn
	OpSkp         // Ex9E
	OpSknp        // ExA1
	OpLdVxDT      // Fx07
	OpLdVxK       // Fx0A
	OpLdDTVx      // Fx15
	OpLdSTVx      // Fx18
	OpAddI        // Fx1E
	OpLdF         // Fx29
	OpLdB         // Fx33
	OpStore       // Fx55
	OpLoad        // Fx65
)

var opNames = [...]string{
	OpUnknown: "UNKNOWN",
	OpCls:     "CLS",
	OpRet:     "RET",
	OpJp:      "JP",
	OpCall:    "CALL",
	OpSeByte:  "SE",
	OpSneByte: "SNE",
	OpSeReg:   "SE",
	OpLdByte:  "LD",
	OpAddByte: "ADD",
	OpLdReg:   "LD",
	OpOr:      "OR",
	OpAnd:     "AND",
	OpXor:     "XOR",
	OpAddReg:  "ADD",
	OpSub:     "SUB",
	OpShr:     "SHR",
	OpSubn:    "SUBN",
	OpShl:     "SHL",
	OpSneReg:  "SNE",
	OpLdI:     "LD",
	OpJpV0:    "JP",
	OpRnd:     "RND",
	OpDrw:     "DRW",
	OpSkp:     "SKP",
	OpSknp:    "SKNP",
	OpLdVxDT:  "LD",
	OpLdVxK:   "LD",
	OpLdDTVx:  "LD",
	OpLdSTVx:  "LD",
	OpAddI:    "ADD",
	OpLdF:     "LD",
	OpLdB:     "LD",
	OpStore:   "LD",
	OpLoad:    "LD",
}

// String returns the mnemonic of the operation.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return opNames[OpUnknown]
}

// Instruction is a decoded opcode. All fields are extracted regardless of
// the operation, fields that the operation does not use are ignored.
type Instruction struct {
	Op     Op
	Opcode uint16
	X      uint8  // bits 8-11
	Y      uint8  // bits 4-7
	N      uint8  // bits 0-3
	KK     uint8  // low byte
	Addr   uint16 // low 12 bits
}

// Decode splits a 16 bit opcode into its fields and identifies the
// operation. It has no side effects.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode: opcode,
		X:      uint8(opcode>>8) & 0x0F,
		Y:      uint8(opcode>>4) & 0x0F,
		N:      uint8(opcode) & 0x0F,
		KK:     uint8(opcode),
		Addr:   opcode & 0x0FFF,
	}
	ins.Op = decodeOp(opcode, ins.N, ins.KK)
	return ins
}

func decodeOp(opcode uint16, n, kk uint8) Op {
	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeByte
	case 0x4:
		return OpSneByte
	case 0x5:
		if n == 0 {
			return OpSeReg
		}
	case 0x6:
		return OpLdByte
	case 0x7:
		return OpAddByte
	case 0x8:
		return decodeALU(n)
	case 0x9:
		if n == 0 {
			return OpSneReg
		}
	case 0xA:
		return OpLdI
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch kk {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF:
		return decodeMisc(kk)
	}
	return OpUnknown
}

func decodeALU(n uint8) Op {
	switch n {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	default:
		return OpUnknown
	}
}

func decodeMisc(kk uint8) Op {
	switch kk {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdF
	case 0x33:
		return OpLdB
	case 0x55:
		return OpStore
	case 0x65:
		return OpLoad
	default:
		return OpUnknown
	}
}
